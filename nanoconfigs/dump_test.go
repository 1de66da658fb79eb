package nanoconfigs

import (
	"testing"

	"github.com/nanolang/nano/configs"
	"github.com/nanolang/nano/modes"
	"github.com/reusee/dscope"
)

// callScope builds a fresh scope whose config loader reads only the
// given files, bypassing the nano.cue discovery.
func callScope(t *testing.T, paths []string, fn any) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(func() configs.Loader {
		return configs.NewLoader(paths, schema)
	}).Call(fn)
}

func TestDumpDefaults(t *testing.T) {
	callScope(t, nil, func(
		tokens DumpTokens,
		ast DumpAST,
	) {
		if !tokens {
			t.Fatal("tokens should default to on")
		}
		if !ast {
			t.Fatal("ast should default to on")
		}
	})
}

func TestDumpFromConfig(t *testing.T) {
	callScope(t, []string{"test.cue"}, func(
		tokens DumpTokens,
		ast DumpAST,
	) {
		if tokens {
			t.Fatal("config switches tokens off")
		}
		if !ast {
			t.Fatal("ast unset in config, stays on")
		}
	})
}

func TestDumpFlagOverConfig(t *testing.T) {
	*dumpTokensFlag = true
	defer func() {
		*dumpTokensFlag = false
	}()
	callScope(t, []string{"test.cue"}, func(
		tokens DumpTokens,
	) {
		if !tokens {
			t.Fatal("flag wins over config")
		}
	})
}

func TestQuiet(t *testing.T) {
	*quietFlag = true
	defer func() {
		*quietFlag = false
	}()
	callScope(t, nil, func(
		tokens DumpTokens,
		ast DumpAST,
	) {
		if bool(tokens) || bool(ast) {
			t.Fatal("quiet switches both dumps off")
		}
	})
}

func TestDumpFlagOverQuiet(t *testing.T) {
	*quietFlag = true
	*dumpASTFlag = true
	defer func() {
		*quietFlag = false
		*dumpASTFlag = false
	}()
	callScope(t, nil, func(
		tokens DumpTokens,
		ast DumpAST,
	) {
		if tokens {
			t.Fatal("quiet still silences tokens")
		}
		if !ast {
			t.Fatal("explicit flag wins over quiet")
		}
	})
}
