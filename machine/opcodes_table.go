package machine

// instructionTable is the full 256-entry 65C02 opcode map (§4.9). Every
// slot is defined — the 65C02 leaves none of the NMOS 6502's illegal
// opcodes undefined; WDC filled them with new instructions (TSB, TRB, STZ,
// BBRn/BBSn, RMBn/SMBn, PHX/PHY/PLX/PLY, BRA, STP, WAI) or, for the
// handful that stayed truly unused, single- or multi-byte NOPs with the
// same operand-fetch footprint as the NMOS part they imitate.
var instructionTable = [256]Instruction{
	{0x00, "BRK", Implied, KindOther, 1, 7},
	{0x01, "ORA", PreIndexedIndirect, KindRead, 2, 6},
	{0x02, "NOP", Immediate, KindRead, 2, 2},
	{0x03, "NOP", Implied, KindOther, 1, 1},
	{0x04, "TSB", ZeroPage, KindReadModWrite, 2, 5},
	{0x05, "ORA", ZeroPage, KindRead, 2, 3},
	{0x06, "ASL", ZeroPage, KindReadModWrite, 2, 5},
	{0x07, "RMB0", ZeroPage, KindReadModWrite, 2, 5},
	{0x08, "PHP", Implied, KindOther, 1, 3},
	{0x09, "ORA", Immediate, KindRead, 2, 2},
	{0x0A, "ASL", Accumulator, KindReadModWrite, 1, 2},
	{0x0B, "NOP", Implied, KindOther, 1, 1},
	{0x0C, "TSB", Absolute, KindReadModWrite, 3, 6},
	{0x0D, "ORA", Absolute, KindRead, 3, 4},
	{0x0E, "ASL", Absolute, KindReadModWrite, 3, 6},
	{0x0F, "BBR0", ZeroPageRelative, KindOther, 3, 5},

	{0x10, "BPL", Relative, KindOther, 2, 2},
	{0x11, "ORA", PostIndexedIndirect, KindRead, 2, 5},
	{0x12, "ORA", ZeroPageIndirect, KindRead, 2, 5},
	{0x13, "NOP", Implied, KindOther, 1, 1},
	{0x14, "TRB", ZeroPage, KindReadModWrite, 2, 5},
	{0x15, "ORA", ZeroPageX, KindRead, 2, 4},
	{0x16, "ASL", ZeroPageX, KindReadModWrite, 2, 6},
	{0x17, "RMB1", ZeroPage, KindReadModWrite, 2, 5},
	{0x18, "CLC", Implied, KindOther, 1, 2},
	{0x19, "ORA", AbsoluteY, KindRead, 3, 4},
	{0x1A, "INC", Accumulator, KindReadModWrite, 1, 2},
	{0x1B, "NOP", Implied, KindOther, 1, 1},
	{0x1C, "TRB", Absolute, KindReadModWrite, 3, 6},
	{0x1D, "ORA", AbsoluteX, KindRead, 3, 4},
	{0x1E, "ASL", AbsoluteX, KindReadModWrite, 3, 7},
	{0x1F, "BBR1", ZeroPageRelative, KindOther, 3, 5},

	{0x20, "JSR", Absolute, KindOther, 3, 6},
	{0x21, "AND", PreIndexedIndirect, KindRead, 2, 6},
	{0x22, "NOP", Immediate, KindRead, 2, 2},
	{0x23, "NOP", Implied, KindOther, 1, 1},
	{0x24, "BIT", ZeroPage, KindRead, 2, 3},
	{0x25, "AND", ZeroPage, KindRead, 2, 3},
	{0x26, "ROL", ZeroPage, KindReadModWrite, 2, 5},
	{0x27, "RMB2", ZeroPage, KindReadModWrite, 2, 5},
	{0x28, "PLP", Implied, KindOther, 1, 4},
	{0x29, "AND", Immediate, KindRead, 2, 2},
	{0x2A, "ROL", Accumulator, KindReadModWrite, 1, 2},
	{0x2B, "NOP", Implied, KindOther, 1, 1},
	{0x2C, "BIT", Absolute, KindRead, 3, 4},
	{0x2D, "AND", Absolute, KindRead, 3, 4},
	{0x2E, "ROL", Absolute, KindReadModWrite, 3, 6},
	{0x2F, "BBR2", ZeroPageRelative, KindOther, 3, 5},

	{0x30, "BMI", Relative, KindOther, 2, 2},
	{0x31, "AND", PostIndexedIndirect, KindRead, 2, 5},
	{0x32, "AND", ZeroPageIndirect, KindRead, 2, 5},
	{0x33, "NOP", Implied, KindOther, 1, 1},
	{0x34, "BIT", ZeroPageX, KindRead, 2, 4},
	{0x35, "AND", ZeroPageX, KindRead, 2, 4},
	{0x36, "ROL", ZeroPageX, KindReadModWrite, 2, 6},
	{0x37, "RMB3", ZeroPage, KindReadModWrite, 2, 5},
	{0x38, "SEC", Implied, KindOther, 1, 2},
	{0x39, "AND", AbsoluteY, KindRead, 3, 4},
	{0x3A, "DEC", Accumulator, KindReadModWrite, 1, 2},
	{0x3B, "NOP", Implied, KindOther, 1, 1},
	{0x3C, "BIT", AbsoluteX, KindRead, 3, 4},
	{0x3D, "AND", AbsoluteX, KindRead, 3, 4},
	{0x3E, "ROL", AbsoluteX, KindReadModWrite, 3, 7},
	{0x3F, "BBR3", ZeroPageRelative, KindOther, 3, 5},

	{0x40, "RTI", Implied, KindOther, 1, 6},
	{0x41, "EOR", PreIndexedIndirect, KindRead, 2, 6},
	{0x42, "NOP", Immediate, KindRead, 2, 2},
	{0x43, "NOP", Implied, KindOther, 1, 1},
	{0x44, "NOP", ZeroPage, KindRead, 2, 3},
	{0x45, "EOR", ZeroPage, KindRead, 2, 3},
	{0x46, "LSR", ZeroPage, KindReadModWrite, 2, 5},
	{0x47, "RMB4", ZeroPage, KindReadModWrite, 2, 5},
	{0x48, "PHA", Implied, KindOther, 1, 3},
	{0x49, "EOR", Immediate, KindRead, 2, 2},
	{0x4A, "LSR", Accumulator, KindReadModWrite, 1, 2},
	{0x4B, "NOP", Implied, KindOther, 1, 1},
	{0x4C, "JMP", Absolute, KindOther, 3, 3},
	{0x4D, "EOR", Absolute, KindRead, 3, 4},
	{0x4E, "LSR", Absolute, KindReadModWrite, 3, 6},
	{0x4F, "BBR4", ZeroPageRelative, KindOther, 3, 5},

	{0x50, "BVC", Relative, KindOther, 2, 2},
	{0x51, "EOR", PostIndexedIndirect, KindRead, 2, 5},
	{0x52, "EOR", ZeroPageIndirect, KindRead, 2, 5},
	{0x53, "NOP", Implied, KindOther, 1, 1},
	{0x54, "NOP", ZeroPageX, KindRead, 2, 4},
	{0x55, "EOR", ZeroPageX, KindRead, 2, 4},
	{0x56, "LSR", ZeroPageX, KindReadModWrite, 2, 6},
	{0x57, "RMB5", ZeroPage, KindReadModWrite, 2, 5},
	{0x58, "CLI", Implied, KindOther, 1, 2},
	{0x59, "EOR", AbsoluteY, KindRead, 3, 4},
	{0x5A, "PHY", Implied, KindOther, 1, 3},
	{0x5B, "NOP", Implied, KindOther, 1, 1},
	{0x5C, "NOP", Absolute, KindRead, 3, 4},
	{0x5D, "EOR", AbsoluteX, KindRead, 3, 4},
	{0x5E, "LSR", AbsoluteX, KindReadModWrite, 3, 7},
	{0x5F, "BBR5", ZeroPageRelative, KindOther, 3, 5},

	{0x60, "RTS", Implied, KindOther, 1, 6},
	{0x61, "ADC", PreIndexedIndirect, KindRead, 2, 6},
	{0x62, "NOP", Immediate, KindRead, 2, 2},
	{0x63, "NOP", Implied, KindOther, 1, 1},
	{0x64, "STZ", ZeroPage, KindWrite, 2, 3},
	{0x65, "ADC", ZeroPage, KindRead, 2, 3},
	{0x66, "ROR", ZeroPage, KindReadModWrite, 2, 5},
	{0x67, "RMB6", ZeroPage, KindReadModWrite, 2, 5},
	{0x68, "PLA", Implied, KindOther, 1, 4},
	{0x69, "ADC", Immediate, KindRead, 2, 2},
	{0x6A, "ROR", Accumulator, KindReadModWrite, 1, 2},
	{0x6B, "NOP", Implied, KindOther, 1, 1},
	{0x6C, "JMP", AbsoluteIndirect, KindOther, 3, 6},
	{0x6D, "ADC", Absolute, KindRead, 3, 4},
	{0x6E, "ROR", Absolute, KindReadModWrite, 3, 6},
	{0x6F, "BBR6", ZeroPageRelative, KindOther, 3, 5},

	{0x70, "BVS", Relative, KindOther, 2, 2},
	{0x71, "ADC", PostIndexedIndirect, KindRead, 2, 5},
	{0x72, "ADC", ZeroPageIndirect, KindRead, 2, 5},
	{0x73, "NOP", Implied, KindOther, 1, 1},
	{0x74, "STZ", ZeroPageX, KindWrite, 2, 4},
	{0x75, "ADC", ZeroPageX, KindRead, 2, 4},
	{0x76, "ROR", ZeroPageX, KindReadModWrite, 2, 6},
	{0x77, "RMB7", ZeroPage, KindReadModWrite, 2, 5},
	{0x78, "SEI", Implied, KindOther, 1, 2},
	{0x79, "ADC", AbsoluteY, KindRead, 3, 4},
	{0x7A, "PLY", Implied, KindOther, 1, 4},
	{0x7B, "NOP", Implied, KindOther, 1, 1},
	{0x7C, "JMP", AbsoluteIndexedIndirect, KindOther, 3, 6},
	{0x7D, "ADC", AbsoluteX, KindRead, 3, 4},
	{0x7E, "ROR", AbsoluteX, KindReadModWrite, 3, 7},
	{0x7F, "BBR7", ZeroPageRelative, KindOther, 3, 5},

	{0x80, "BRA", Relative, KindOther, 2, 3},
	{0x81, "STA", PreIndexedIndirect, KindWrite, 2, 6},
	{0x82, "NOP", Immediate, KindRead, 2, 2},
	{0x83, "NOP", Implied, KindOther, 1, 1},
	{0x84, "STY", ZeroPage, KindWrite, 2, 3},
	{0x85, "STA", ZeroPage, KindWrite, 2, 3},
	{0x86, "STX", ZeroPage, KindWrite, 2, 3},
	{0x87, "SMB0", ZeroPage, KindReadModWrite, 2, 5},
	{0x88, "DEY", Implied, KindOther, 1, 2},
	{0x89, "BIT", Immediate, KindRead, 2, 2},
	{0x8A, "TXA", Implied, KindOther, 1, 2},
	{0x8B, "NOP", Implied, KindOther, 1, 1},
	{0x8C, "STY", Absolute, KindWrite, 3, 4},
	{0x8D, "STA", Absolute, KindWrite, 3, 4},
	{0x8E, "STX", Absolute, KindWrite, 3, 4},
	{0x8F, "BBS0", ZeroPageRelative, KindOther, 3, 5},

	{0x90, "BCC", Relative, KindOther, 2, 2},
	{0x91, "STA", PostIndexedIndirect, KindWrite, 2, 6},
	{0x92, "STA", ZeroPageIndirect, KindWrite, 2, 5},
	{0x93, "NOP", Implied, KindOther, 1, 1},
	{0x94, "STY", ZeroPageX, KindWrite, 2, 4},
	{0x95, "STA", ZeroPageX, KindWrite, 2, 4},
	{0x96, "STX", ZeroPageY, KindWrite, 2, 4},
	{0x97, "SMB1", ZeroPage, KindReadModWrite, 2, 5},
	{0x98, "TYA", Implied, KindOther, 1, 2},
	{0x99, "STA", AbsoluteY, KindWrite, 3, 5},
	{0x9A, "TXS", Implied, KindOther, 1, 2},
	{0x9B, "NOP", Implied, KindOther, 1, 1},
	{0x9C, "STZ", Absolute, KindWrite, 3, 4},
	{0x9D, "STA", AbsoluteX, KindWrite, 3, 5},
	{0x9E, "STZ", AbsoluteX, KindWrite, 3, 5},
	{0x9F, "BBS1", ZeroPageRelative, KindOther, 3, 5},

	{0xA0, "LDY", Immediate, KindRead, 2, 2},
	{0xA1, "LDA", PreIndexedIndirect, KindRead, 2, 6},
	{0xA2, "LDX", Immediate, KindRead, 2, 2},
	{0xA3, "NOP", Implied, KindOther, 1, 1},
	{0xA4, "LDY", ZeroPage, KindRead, 2, 3},
	{0xA5, "LDA", ZeroPage, KindRead, 2, 3},
	{0xA6, "LDX", ZeroPage, KindRead, 2, 3},
	{0xA7, "SMB2", ZeroPage, KindReadModWrite, 2, 5},
	{0xA8, "TAY", Implied, KindOther, 1, 2},
	{0xA9, "LDA", Immediate, KindRead, 2, 2},
	{0xAA, "TAX", Implied, KindOther, 1, 2},
	{0xAB, "NOP", Implied, KindOther, 1, 1},
	{0xAC, "LDY", Absolute, KindRead, 3, 4},
	{0xAD, "LDA", Absolute, KindRead, 3, 4},
	{0xAE, "LDX", Absolute, KindRead, 3, 4},
	{0xAF, "BBS2", ZeroPageRelative, KindOther, 3, 5},

	{0xB0, "BCS", Relative, KindOther, 2, 2},
	{0xB1, "LDA", PostIndexedIndirect, KindRead, 2, 5},
	{0xB2, "LDA", ZeroPageIndirect, KindRead, 2, 5},
	{0xB3, "NOP", Implied, KindOther, 1, 1},
	{0xB4, "LDY", ZeroPageX, KindRead, 2, 4},
	{0xB5, "LDA", ZeroPageX, KindRead, 2, 4},
	{0xB6, "LDX", ZeroPageY, KindRead, 2, 4},
	{0xB7, "SMB3", ZeroPage, KindReadModWrite, 2, 5},
	{0xB8, "CLV", Implied, KindOther, 1, 2},
	{0xB9, "LDA", AbsoluteY, KindRead, 3, 4},
	{0xBA, "TSX", Implied, KindOther, 1, 2},
	{0xBB, "NOP", Implied, KindOther, 1, 1},
	{0xBC, "LDY", AbsoluteX, KindRead, 3, 4},
	{0xBD, "LDA", AbsoluteX, KindRead, 3, 4},
	{0xBE, "LDX", AbsoluteY, KindRead, 3, 4},
	{0xBF, "BBS3", ZeroPageRelative, KindOther, 3, 5},

	{0xC0, "CPY", Immediate, KindRead, 2, 2},
	{0xC1, "CMP", PreIndexedIndirect, KindRead, 2, 6},
	{0xC2, "NOP", Immediate, KindRead, 2, 2},
	{0xC3, "NOP", Implied, KindOther, 1, 1},
	{0xC4, "CPY", ZeroPage, KindRead, 2, 3},
	{0xC5, "CMP", ZeroPage, KindRead, 2, 3},
	{0xC6, "DEC", ZeroPage, KindReadModWrite, 2, 5},
	{0xC7, "SMB4", ZeroPage, KindReadModWrite, 2, 5},
	{0xC8, "INY", Implied, KindOther, 1, 2},
	{0xC9, "CMP", Immediate, KindRead, 2, 2},
	{0xCA, "DEX", Implied, KindOther, 1, 2},
	{0xCB, "WAI", Implied, KindOther, 1, 3},
	{0xCC, "CPY", Absolute, KindRead, 3, 4},
	{0xCD, "CMP", Absolute, KindRead, 3, 4},
	{0xCE, "DEC", Absolute, KindReadModWrite, 3, 6},
	{0xCF, "BBS4", ZeroPageRelative, KindOther, 3, 5},

	{0xD0, "BNE", Relative, KindOther, 2, 2},
	{0xD1, "CMP", PostIndexedIndirect, KindRead, 2, 5},
	{0xD2, "CMP", ZeroPageIndirect, KindRead, 2, 5},
	{0xD3, "NOP", Implied, KindOther, 1, 1},
	{0xD4, "NOP", ZeroPageX, KindRead, 2, 4},
	{0xD5, "CMP", ZeroPageX, KindRead, 2, 4},
	{0xD6, "DEC", ZeroPageX, KindReadModWrite, 2, 6},
	{0xD7, "SMB5", ZeroPage, KindReadModWrite, 2, 5},
	{0xD8, "CLD", Implied, KindOther, 1, 2},
	{0xD9, "CMP", AbsoluteY, KindRead, 3, 4},
	{0xDA, "PHX", Implied, KindOther, 1, 3},
	{0xDB, "STP", Implied, KindOther, 1, 3},
	{0xDC, "NOP", AbsoluteX, KindRead, 3, 4},
	{0xDD, "CMP", AbsoluteX, KindRead, 3, 4},
	{0xDE, "DEC", AbsoluteX, KindReadModWrite, 3, 7},
	{0xDF, "BBS5", ZeroPageRelative, KindOther, 3, 5},

	{0xE0, "CPX", Immediate, KindRead, 2, 2},
	{0xE1, "SBC", PreIndexedIndirect, KindRead, 2, 6},
	{0xE2, "NOP", Immediate, KindRead, 2, 2},
	{0xE3, "NOP", Implied, KindOther, 1, 1},
	{0xE4, "CPX", ZeroPage, KindRead, 2, 3},
	{0xE5, "SBC", ZeroPage, KindRead, 2, 3},
	{0xE6, "INC", ZeroPage, KindReadModWrite, 2, 5},
	{0xE7, "SMB6", ZeroPage, KindReadModWrite, 2, 5},
	{0xE8, "INX", Implied, KindOther, 1, 2},
	{0xE9, "SBC", Immediate, KindRead, 2, 2},
	{0xEA, "NOP", Implied, KindOther, 1, 2},
	{0xEB, "NOP", Implied, KindOther, 1, 1},
	{0xEC, "CPX", Absolute, KindRead, 3, 4},
	{0xED, "SBC", Absolute, KindRead, 3, 4},
	{0xEE, "INC", Absolute, KindReadModWrite, 3, 6},
	{0xEF, "BBS6", ZeroPageRelative, KindOther, 3, 5},

	{0xF0, "BEQ", Relative, KindOther, 2, 2},
	{0xF1, "SBC", PostIndexedIndirect, KindRead, 2, 5},
	{0xF2, "SBC", ZeroPageIndirect, KindRead, 2, 5},
	{0xF3, "NOP", Implied, KindOther, 1, 1},
	{0xF4, "NOP", ZeroPageX, KindRead, 2, 4},
	{0xF5, "SBC", ZeroPageX, KindRead, 2, 4},
	{0xF6, "INC", ZeroPageX, KindReadModWrite, 2, 6},
	{0xF7, "SMB7", ZeroPage, KindReadModWrite, 2, 5},
	{0xF8, "SED", Implied, KindOther, 1, 2},
	{0xF9, "SBC", AbsoluteY, KindRead, 3, 4},
	{0xFA, "PLX", Implied, KindOther, 1, 4},
	{0xFB, "NOP", Implied, KindOther, 1, 1},
	{0xFC, "NOP", AbsoluteX, KindRead, 3, 4},
	{0xFD, "SBC", AbsoluteX, KindRead, 3, 4},
	{0xFE, "INC", AbsoluteX, KindReadModWrite, 3, 7},
	{0xFF, "BBS7", ZeroPageRelative, KindOther, 3, 5},
}
