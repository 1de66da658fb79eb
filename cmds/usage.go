package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintf(os.Stderr, "usage of %s:\n", os.Args[0])
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, indent int) {
	// aliases share one *Command; print each once, under all its names
	printed := make(map[*Command][]string)
	var order []*Command
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if _, ok := printed[command]; !ok {
			order = append(order, command)
		}
		printed[command] = append(printed[command], name)
	}

	for _, command := range order {
		fmt.Fprintf(os.Stderr, "%s%s",
			strings.Repeat("  ", indent),
			strings.Join(printed[command], ", "),
		)
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "\t%s", command.Description)
		}
		fmt.Fprintf(os.Stderr, "\n")
		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
