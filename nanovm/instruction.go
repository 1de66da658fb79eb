package nanovm

import "fmt"

// Instruction is one element of a bytecode stream: a bare opcode, an opcode
// with one string argument, or an inline data segment.
type Instruction interface {
	isInstruction()
	String() string
}

type Op struct {
	Code OpCode
}

type OpWithArg struct {
	Code OpCode
	Arg  string
}

type Data struct {
	Value string
}

func (Op) isInstruction()        {}
func (OpWithArg) isInstruction() {}
func (Data) isInstruction()      {}

func (i Op) String() string {
	return i.Code.String()
}

func (i OpWithArg) String() string {
	return fmt.Sprintf("%s %s", i.Code, i.Arg)
}

func (i Data) String() string {
	return fmt.Sprintf("data %q", i.Value)
}
