package cmds

// Var defines a flag-style command taking one value, like
// "-max-depth 64". The trailing-dot form resets it to zero.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines a boolean command like "-tokens"; the "!" prefixed
// form turns it back off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines a repeatable command like "-f a.nano -f b.nano",
// accumulating every given value.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
