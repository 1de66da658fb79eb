package main

import (
	"context"
	"io"
	"os"

	"github.com/nanolang/nano/cmds"
	"github.com/nanolang/nano/debugs"
	"github.com/nanolang/nano/logs"
	"github.com/nanolang/nano/modes"
	"github.com/nanolang/nano/nanoconfigs"
	"github.com/nanolang/nano/nanolang"
	"github.com/reusee/dscope"
)

var (
	files   = cmds.Collect[string]("-f")
	inspect = cmds.Switch("-inspect")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		dumpTokens nanoconfigs.DumpTokens,
		dumpAST nanoconfigs.DumpAST,
		maxDepth nanoconfigs.MaxDepth,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(ctx, "")

		for _, source := range loadSources() {
			tokens, err := nanolang.Tokenize(source)
			if err != nil {
				fatal(err)
			}
			if dumpTokens {
				nanolang.DumpTokens(os.Stdout, tokens)
			}

			parser := nanolang.NewParser(tokens)
			parser.MaxDepth = int(maxDepth)
			nodes, err := parser.Parse()
			if err != nil {
				fatal(err)
			}
			if dumpAST {
				nanolang.Dump(os.Stdout, nodes)
			}

			logger.InfoContext(ctx, "parsed",
				"source", source.Name,
				"tokens", len(tokens),
				"statements", len(nodes),
			)

			if *inspect {
				tap(ctx, source.Name, map[string]any{
					"source": source.Content,
					"tokens": tokens,
					"ast":    nodes,
				})
			}
		}
	})
}

// loadSources reads each -f argument fully into memory; with no -f the
// whole of stdin becomes the single input.
func loadSources() []*nanolang.Source {
	if len(*files) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal(err)
		}
		return []*nanolang.Source{
			nanolang.NewSource("", string(content)),
		}
	}

	var sources []*nanolang.Source
	for _, path := range *files {
		content, err := os.ReadFile(path)
		if err != nil {
			fatal(err)
		}
		sources = append(sources, nanolang.NewSource(path, string(content)))
	}
	return sources
}

func fatal(err error) {
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(-1)
}
