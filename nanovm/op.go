package nanovm

// OpCode enumerates the planned bytecode operations. No emitter produces
// them and no machine executes them yet; the enumeration and its byte
// encoding are the compatibility surface a future backend has to honor.
type OpCode uint8

const (
	OpPush OpCode = iota
	OpPop
	OpLdv
	OpStv
	OpPrint
	OpPrintln
	OpReadln
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpHalt
	OpCall
	OpFunc
	OpRet
	OpSet
)

// Byte returns the fixed wire encoding of the opcode. Readln sits apart
// from the dense low range.
func (o OpCode) Byte() byte {
	switch o {
	case OpPush:
		return 0x01
	case OpPop:
		return 0x02
	case OpLdv:
		return 0x03
	case OpStv:
		return 0x04
	case OpPrint:
		return 0x05
	case OpPrintln:
		return 0x06
	case OpAdd:
		return 0x07
	case OpSub:
		return 0x08
	case OpMul:
		return 0x09
	case OpDiv:
		return 0x0A
	case OpHalt:
		return 0x0B
	case OpCall:
		return 0x0C
	case OpFunc:
		return 0x0D
	case OpRet:
		return 0x0E
	case OpSet:
		return 0x0F
	case OpReadln:
		return 0xA0
	}
	return 0
}

func (o OpCode) String() string {
	switch o {
	case OpPush:
		return "Push"
	case OpPop:
		return "Pop"
	case OpLdv:
		return "Ldv"
	case OpStv:
		return "Stv"
	case OpPrint:
		return "Print"
	case OpPrintln:
		return "Println"
	case OpReadln:
		return "Readln"
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpHalt:
		return "Halt"
	case OpCall:
		return "Call"
	case OpFunc:
		return "Func"
	case OpRet:
		return "Ret"
	case OpSet:
		return "Set"
	}
	return "Invalid"
}
