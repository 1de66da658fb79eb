package nanoconfigs

import (
	"github.com/nanolang/nano/cmds"
	"github.com/nanolang/nano/configs"
	"github.com/nanolang/nano/vars"
)

// MaxDepth bounds parser nesting. Zero leaves nesting unbounded.
type MaxDepth int

var maxDepthFlag = cmds.Var[int]("-max-depth")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		*maxDepthFlag,
		configs.First[int](loader, "parser.maxDepth"),
	))
}
