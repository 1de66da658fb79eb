package cmds

import "os"

// GlobalExecutor backs the package-level Define/Execute used by the
// flag-style init registrations across the repo.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs the process arguments against the global executor and exits
// on failure, so mains can call it before building their scope.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
}
