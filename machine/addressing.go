package machine

// AddressingMode is one of the 65C02's operand addressing forms (§1, §4.9).
// The 65C02 adds ZeroPageIndirect ("(zp)") and AbsoluteIndexedIndirect
// ("(abs,X)", used only by the new JMP (abs,X)) to the NMOS 6502's set.
type AddressingMode byte

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	ZeroPageIndirect
	Absolute
	AbsoluteX
	AbsoluteY
	AbsoluteIndirect
	AbsoluteIndexedIndirect
	Relative
	ZeroPageRelative // BBRn/BBSn: zero-page operand + relative branch offset
	PreIndexedIndirect
	PostIndexedIndirect
)

// InstructionKind distinguishes how an instruction's operand is used, which
// determines whether resolveOperand needs to emit a dummy read (to
// reproduce the bus cycle count a real 65C02 spends) before the real one.
type InstructionKind byte

const (
	KindOther InstructionKind = iota
	KindRead
	KindWrite
	KindReadModWrite
)

// Instruction is one row of the 256-entry opcode table (§4.9).
type Instruction struct {
	OpCode byte
	Name   string
	Mode   AddressingMode
	Kind   InstructionKind
	Size   byte
	Cycles byte
}

// resolveOperand computes the effective address for inst's addressing mode,
// advancing PC past the operand bytes and spending the bus cycles a real
// 65C02 would (§4.9 step 3). The accumulator and implied forms return 0;
// their handlers don't consult the address. The relative forms return the
// branch target.
func (c *CPU) resolveOperand(inst Instruction) Addr {
	switch inst.Mode {
	case Implied, Accumulator:
		return 0

	case Immediate:
		a := Addr(c.PC)
		c.PC++
		return a

	case ZeroPage:
		return Addr(c.fetch())

	case ZeroPageX:
		zp := c.fetch()
		c.readByte(Addr(zp), IntentRead) // dummy read of unindexed address
		return Addr(zp + c.X)

	case ZeroPageY:
		zp := c.fetch()
		c.readByte(Addr(zp), IntentRead)
		return Addr(zp + c.Y)

	case ZeroPageIndirect:
		zp := c.fetch()
		lo := c.readByte(Addr(zp), IntentRead)
		hi := c.readByte(Addr(zp+1), IntentRead)
		return Addr(uint16(hi)<<8 | uint16(lo))

	case Absolute:
		lo := c.fetch()
		hi := c.fetch()
		return Addr(uint16(hi)<<8 | uint16(lo))

	case AbsoluteX:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		effective := base + uint16(c.X)
		if inst.Kind == KindWrite || inst.Kind == KindReadModWrite || (base&0xFF00) != (effective&0xFF00) {
			c.readByte(Addr(base&0xFF00|effective&0xFF), IntentRead)
		}
		return Addr(effective)

	case AbsoluteY:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		effective := base + uint16(c.Y)
		if inst.Kind == KindWrite || inst.Kind == KindReadModWrite || (base&0xFF00) != (effective&0xFF00) {
			c.readByte(Addr(base&0xFF00|effective&0xFF), IntentRead)
		}
		return Addr(effective)

	case Relative:
		offset := int8(c.fetch())
		return Addr(uint16(c.PC) + uint16(offset))

	case ZeroPageRelative:
		zp := c.fetch()
		c.zpTested = c.readByte(Addr(zp), IntentRead)
		offset := int8(c.fetch())
		return Addr(uint16(c.PC) + uint16(offset))

	case PreIndexedIndirect:
		zp := c.fetch()
		c.readByte(Addr(zp), IntentRead)
		ptr := zp + c.X
		lo := c.readByte(Addr(ptr), IntentRead)
		hi := c.readByte(Addr(ptr+1), IntentRead)
		return Addr(uint16(hi)<<8 | uint16(lo))

	case PostIndexedIndirect:
		zp := c.fetch()
		lo := c.readByte(Addr(zp), IntentRead)
		hi := c.readByte(Addr(zp+1), IntentRead)
		base := uint16(hi)<<8 | uint16(lo)
		effective := base + uint16(c.Y)
		if inst.Kind == KindWrite || inst.Kind == KindReadModWrite || (base&0xFF00) != (effective&0xFF00) {
			c.readByte(Addr(base&0xFF00|effective&0xFF), IntentRead)
		}
		return Addr(effective)

	case AbsoluteIndirect:
		lo := c.fetch()
		hi := c.fetch()
		ptr := uint16(hi)<<8 | uint16(lo)
		// The 65C02 fixed the NMOS JMP (ind) page-wrap bug: the high byte
		// is always fetched from ptr+1, even across a page boundary.
		plo := c.readByte(Addr(ptr), IntentRead)
		phi := c.readByte(Addr(ptr+1), IntentRead)
		return Addr(uint16(phi)<<8 | uint16(plo))

	case AbsoluteIndexedIndirect:
		lo := c.fetch()
		hi := c.fetch()
		ptr := (uint16(hi)<<8 | uint16(lo)) + uint16(c.X)
		plo := c.readByte(Addr(ptr), IntentRead)
		phi := c.readByte(Addr(ptr+1), IntentRead)
		return Addr(uint16(phi)<<8 | uint16(plo))

	default:
		return 0
	}
}

// fetch reads the byte at PC and advances it — used for operand bytes.
func (c *CPU) fetch() byte {
	v := c.readByte(Addr(c.PC), IntentExecute)
	c.PC++
	return v
}
