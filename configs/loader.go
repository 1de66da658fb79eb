package configs

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads a set of cue files lazily, in priority order: lookups
// scan the files as given and earlier files win.
type Loader struct {
	load func() ([]root, error)
}

// NewLoader builds a loader over filePaths. When schemaSrc is not
// empty it is compiled as a closed struct body and every file must
// validate against it.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{

		load: sync.OnceValues(func() (ret []root, err error) {

			var schema cue.Value
			if schemaSrc != "" {
				ctx := cuecontext.New()
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				ctx := cuecontext.New()
				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				ret = append(ret, root{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

type root struct {
	value cue.Value
	path  string
}

// IterCueValues yields the value at path from every file that defines
// it, in priority order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.load()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, r := range roots {
			value := r.value.LookupPath(cuePath)
			if err := value.Err(); err == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

// AssignFirst decodes the highest-priority value at path into target,
// or returns ErrValueNotFound when no file defines it.
func (l Loader) AssignFirst(path string, target any) error {
	roots, err := l.load()
	if err != nil {
		return err
	}

	cuePath := cue.ParsePath(path)
	for _, r := range roots {
		value := r.value.LookupPath(cuePath)
		if err := value.Err(); err == nil {
			if err := value.Decode(target); err != nil {
				return err
			}
			return nil
		}
	}

	return ErrValueNotFound
}
