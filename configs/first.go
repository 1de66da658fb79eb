package configs

import (
	"errors"
)

// First returns the highest-priority value at path. A path no config
// file defines yields the zero value; any other loader error panics.
func First[T any](loader Loader, path string) T {
	var value T
	err := loader.AssignFirst(path, &value)
	if err == nil || errors.Is(err, ErrValueNotFound) {
		return value
	}
	panic(err)
}
