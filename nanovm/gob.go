package nanovm

import "encoding/gob"

func init() {
	gob.Register(OpCode(0))
	gob.Register(Op{})
	gob.Register(OpWithArg{})
	gob.Register(Data{})
}
