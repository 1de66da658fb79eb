package nanovm

import "testing"

var allOpCodes = []OpCode{
	OpPush, OpPop, OpLdv, OpStv,
	OpPrint, OpPrintln, OpReadln,
	OpAdd, OpSub, OpMul, OpDiv,
	OpHalt, OpCall, OpFunc, OpRet, OpSet,
}

func TestOpCodeBytes(t *testing.T) {
	expected := map[OpCode]byte{
		OpPush:    0x01,
		OpPop:     0x02,
		OpLdv:     0x03,
		OpStv:     0x04,
		OpPrint:   0x05,
		OpPrintln: 0x06,
		OpAdd:     0x07,
		OpSub:     0x08,
		OpMul:     0x09,
		OpDiv:     0x0A,
		OpHalt:    0x0B,
		OpCall:    0x0C,
		OpFunc:    0x0D,
		OpRet:     0x0E,
		OpSet:     0x0F,
		OpReadln:  0xA0,
	}
	for op, b := range expected {
		if got := op.Byte(); got != b {
			t.Errorf("%s: expected 0x%02X, got 0x%02X", op, b, got)
		}
	}
}

func TestOpCodeBytesUnique(t *testing.T) {
	seen := make(map[byte]OpCode)
	for _, op := range allOpCodes {
		b := op.Byte()
		if b == 0 {
			t.Errorf("%s has no encoding", op)
		}
		if prev, ok := seen[b]; ok {
			t.Errorf("0x%02X used by both %s and %s", b, prev, op)
		}
		seen[b] = op
	}
}

func TestOpCodeString(t *testing.T) {
	for _, op := range allOpCodes {
		if op.String() == "Invalid" {
			t.Errorf("opcode %d has no name", op)
		}
	}
	if OpCode(200).String() != "Invalid" {
		t.Error("out of range opcode should render as Invalid")
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		instruction Instruction
		expected    string
	}{
		{Op{Code: OpHalt}, "Halt"},
		{OpWithArg{Code: OpPush, Arg: "42"}, "Push 42"},
		{OpWithArg{Code: OpLdv, Arg: "x"}, "Ldv x"},
		{Data{Value: "hello"}, `data "hello"`},
	}
	for _, test := range tests {
		if got := test.instruction.String(); got != test.expected {
			t.Errorf("expected %q, got %q", test.expected, got)
		}
	}
}
