package cmds

import (
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/nanolang/nano/vars"
)

// Executor maps argument words to commands and runs them in order.
// Arguments are consumed left to right; a command's parameters take
// their values from the words that follow it, and a group command
// makes its sub commands visible for the rest of the line.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	e := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		e.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	e.Define("-h", usage)

	return e
}

func (e *Executor) Define(name string, command *Command) {
	if _, ok := e.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	e.commands[name] = command
	for _, alias := range command.Aliases {
		if _, ok := e.commands[alias]; ok {
			panic(fmt.Errorf("duplicated command %s", alias))
		}
		e.commands[alias] = command
	}
}

func (e *Executor) Execute(args []string) error {
	commands := e.commands

	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		var err error
		args, err = call(command, args)
		if err != nil {
			return err
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, sub := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = sub
			}
		}
	}

	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

// call invokes the command's function, filling each parameter from the
// argument words, and returns whatever arguments remain.
func call(command *Command, args []string) ([]string, error) {
	if !command.Func.IsValid() {
		return args, nil
	}

	fnType := command.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := argValue(fnType.In(i), args)
		if err != nil {
			return args, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}

	rets := command.Func.Call(callArgs)
	if len(rets) > 0 {
		if err, ok := rets[0].Interface().(error); ok && err != nil {
			return args, err
		}
	}
	return args, nil
}

// argValue converts the next argument word to the parameter type.
// Pointer parameters are optional and zero-fill when the words run out.
func argValue(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := argValue(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		return elem.Addr(), nil
	}

	if len(args) == 0 {
		return ret, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]

	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
