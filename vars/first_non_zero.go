package vars

import "slices"

// FirstNonZero returns the first value that is not the zero value.
// Precedence chains read left to right: FirstNonZero(flag, config).
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	if i := slices.IndexFunc(values, func(v T) bool {
		return v != zero
	}); i >= 0 {
		return values[i]
	}
	return zero
}
