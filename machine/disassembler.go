package machine

import (
	"fmt"
	"io"
)

// disassemble writes one trace line for the instruction at addr to w,
// mirroring the register-dump-plus-mnemonic format the teacher's tracer
// uses (§4.11). It never touches the bus itself — everything it prints was
// already read by resolveOperand, so tracing never changes cycle counts.
func disassemble(w io.Writer, cpu *CPU, addr Addr, inst Instruction, operandAddr Addr) {
	fmt.Fprintf(w, "%s  %-4s %-20s  %s\n", addr, inst.Name, formatOperand(inst, operandAddr), cpu)
}

func formatOperand(inst Instruction, operandAddr Addr) string {
	switch inst.Mode {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return fmt.Sprintf("#$%02X", byte(operandAddr))
	case ZeroPage:
		return fmt.Sprintf("$%02X", byte(operandAddr))
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X", byte(operandAddr))
	case ZeroPageY:
		return fmt.Sprintf("$%02X,Y", byte(operandAddr))
	case ZeroPageIndirect:
		return fmt.Sprintf("($%02X)", byte(operandAddr))
	case Absolute:
		return fmt.Sprintf("$%04X", uint16(operandAddr))
	case AbsoluteX:
		return fmt.Sprintf("$%04X,X", uint16(operandAddr))
	case AbsoluteY:
		return fmt.Sprintf("$%04X,Y", uint16(operandAddr))
	case AbsoluteIndirect:
		return fmt.Sprintf("($%04X)", uint16(operandAddr))
	case AbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04X,X)", uint16(operandAddr))
	case Relative, ZeroPageRelative:
		return fmt.Sprintf("$%04X", uint16(operandAddr))
	case PreIndexedIndirect:
		return fmt.Sprintf("($%02X,X)", byte(operandAddr))
	case PostIndexedIndirect:
		return fmt.Sprintf("($%02X),Y", byte(operandAddr))
	default:
		return ""
	}
}
