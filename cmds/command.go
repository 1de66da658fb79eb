package cmds

import (
	"fmt"
	"reflect"
)

// Command is one argument handler. Leaf commands carry a Func whose
// parameters are filled from the following arguments; group commands
// carry Subs that become reachable after the group name is seen. The
// driver's flags (-f, -tokens, -max-depth and friends) are all leaf
// commands built through the helpers.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

// Func wraps fn as a leaf command. fn may return nothing or a single
// error.
func Func(fn any) *Command {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	t := fv.Type()
	if t.NumOut() > 1 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if t.NumOut() == 1 && t.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fv,
	}
}

var errorType = reflect.TypeFor[error]()

// Sub groups commands under a common prefix argument.
func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}
