package nanoconfigs

import (
	"errors"

	"github.com/nanolang/nano/cmds"
	"github.com/nanolang/nano/configs"
)

// DumpTokens and DumpAST select what the driver prints. Both default
// to on; flags and config can switch either off.
type (
	DumpTokens bool
	DumpAST    bool
)

var (
	dumpTokensFlag = cmds.Switch("-tokens")
	dumpASTFlag    = cmds.Switch("-ast")
	quietFlag      = cmds.Switch("-quiet")
)

func (Module) DumpTokens(
	loader configs.Loader,
) DumpTokens {
	if *dumpTokensFlag {
		return true
	}
	if *quietFlag {
		return false
	}
	return DumpTokens(fromConfig(loader, "dump.tokens"))
}

func (Module) DumpAST(
	loader configs.Loader,
) DumpAST {
	if *dumpASTFlag {
		return true
	}
	if *quietFlag {
		return false
	}
	return DumpAST(fromConfig(loader, "dump.ast"))
}

func fromConfig(loader configs.Loader, path string) bool {
	value := true
	if err := loader.AssignFirst(path, &value); err != nil &&
		!errors.Is(err, configs.ErrValueNotFound) {
		panic(err)
	}
	return value
}
