package cpu

// InstructionID names an instruction's semantics, independent of which
// opcode byte or addressing mode produced it. Every undocumented/illegal
// opcode is treated as a NOP with a best-effort cycle count; they are
// never given their own InstructionID, since this core does not model
// their real (and often CPU-revision-specific) side effects.
type InstructionID int

const (
	ADC InstructionID = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

// opcodeEntry is one row of the flat 256-entry decode table: what the
// opcode does, how its operand is fetched, and how many cycles it
// costs. pageCrossExtra marks the "read" class of indexed addressing
// modes that cost one extra cycle when indexing crosses a page
// boundary; fixed-cost instructions (stores, read-modify-write) leave
// it false because hardware always pays the worst case for those.
type opcodeEntry struct {
	instr          InstructionID
	mode           AddressingMode
	cycles         uint8
	pageCrossExtra bool
}

// opcodeTable is indexed directly by opcode byte. Every one of the 256
// slots is populated: documented opcodes get their real semantics,
// every undocumented/illegal opcode decodes to NOP using the
// addressing mode, byte length, and cycle count of its real hardware
// behavior (so PC advancement and cycle billing stay correct even
// though the side effect is a no-op).
var opcodeTable = [256]opcodeEntry{
	0x00: {BRK, Implicit, 7, false},
	0x01: {ORA, IndirectX, 6, false},
	0x02: {NOP, Implicit, 2, false},
	0x03: {NOP, IndirectX, 8, false},
	0x04: {NOP, ZeroPage, 3, false},
	0x05: {ORA, ZeroPage, 3, false},
	0x06: {ASL, ZeroPage, 5, false},
	0x07: {NOP, ZeroPage, 5, false},
	0x08: {PHP, Implicit, 3, false},
	0x09: {ORA, Immediate, 2, false},
	0x0A: {ASL, Accumulator, 2, false},
	0x0B: {NOP, Immediate, 2, false},
	0x0C: {NOP, Absolute, 4, false},
	0x0D: {ORA, Absolute, 4, false},
	0x0E: {ASL, Absolute, 6, false},
	0x0F: {NOP, Absolute, 6, false},

	0x10: {BPL, Relative, 2, false},
	0x11: {ORA, IndirectY, 5, true},
	0x12: {NOP, Implicit, 2, false},
	0x13: {NOP, IndirectY, 8, false},
	0x14: {NOP, ZeroPageX, 4, false},
	0x15: {ORA, ZeroPageX, 4, false},
	0x16: {ASL, ZeroPageX, 6, false},
	0x17: {NOP, ZeroPageX, 6, false},
	0x18: {CLC, Implicit, 2, false},
	0x19: {ORA, AbsoluteY, 4, true},
	0x1A: {NOP, Implicit, 2, false},
	0x1B: {NOP, AbsoluteY, 7, false},
	0x1C: {NOP, AbsoluteX, 4, true},
	0x1D: {ORA, AbsoluteX, 4, true},
	0x1E: {ASL, AbsoluteX, 7, false},
	0x1F: {NOP, AbsoluteX, 7, false},

	0x20: {JSR, Absolute, 6, false},
	0x21: {AND, IndirectX, 6, false},
	0x22: {NOP, Implicit, 2, false},
	0x23: {NOP, IndirectX, 8, false},
	0x24: {BIT, ZeroPage, 3, false},
	0x25: {AND, ZeroPage, 3, false},
	0x26: {ROL, ZeroPage, 5, false},
	0x27: {NOP, ZeroPage, 5, false},
	0x28: {PLP, Implicit, 4, false},
	0x29: {AND, Immediate, 2, false},
	0x2A: {ROL, Accumulator, 2, false},
	0x2B: {NOP, Immediate, 2, false},
	0x2C: {BIT, Absolute, 4, false},
	0x2D: {AND, Absolute, 4, false},
	0x2E: {ROL, Absolute, 6, false},
	0x2F: {NOP, Absolute, 6, false},

	0x30: {BMI, Relative, 2, false},
	0x31: {AND, IndirectY, 5, true},
	0x32: {NOP, Implicit, 2, false},
	0x33: {NOP, IndirectY, 8, false},
	0x34: {NOP, ZeroPageX, 4, false},
	0x35: {AND, ZeroPageX, 4, false},
	0x36: {ROL, ZeroPageX, 6, false},
	0x37: {NOP, ZeroPageX, 6, false},
	0x38: {SEC, Implicit, 2, false},
	0x39: {AND, AbsoluteY, 4, true},
	0x3A: {NOP, Implicit, 2, false},
	0x3B: {NOP, AbsoluteY, 7, false},
	0x3C: {NOP, AbsoluteX, 4, true},
	0x3D: {AND, AbsoluteX, 4, true},
	0x3E: {ROL, AbsoluteX, 7, false},
	0x3F: {NOP, AbsoluteX, 7, false},

	0x40: {RTI, Implicit, 6, false},
	0x41: {EOR, IndirectX, 6, false},
	0x42: {NOP, Implicit, 2, false},
	0x43: {NOP, IndirectX, 8, false},
	0x44: {NOP, ZeroPage, 3, false},
	0x45: {EOR, ZeroPage, 3, false},
	0x46: {LSR, ZeroPage, 5, false},
	0x47: {NOP, ZeroPage, 5, false},
	0x48: {PHA, Implicit, 3, false},
	0x49: {EOR, Immediate, 2, false},
	0x4A: {LSR, Accumulator, 2, false},
	0x4B: {NOP, Immediate, 2, false},
	0x4C: {JMP, Absolute, 3, false},
	0x4D: {EOR, Absolute, 4, false},
	0x4E: {LSR, Absolute, 6, false},
	0x4F: {NOP, Absolute, 6, false},

	0x50: {BVC, Relative, 2, false},
	0x51: {EOR, IndirectY, 5, true},
	0x52: {NOP, Implicit, 2, false},
	0x53: {NOP, IndirectY, 8, false},
	0x54: {NOP, ZeroPageX, 4, false},
	0x55: {EOR, ZeroPageX, 4, false},
	0x56: {LSR, ZeroPageX, 6, false},
	0x57: {NOP, ZeroPageX, 6, false},
	0x58: {CLI, Implicit, 2, false},
	0x59: {EOR, AbsoluteY, 4, true},
	0x5A: {NOP, Implicit, 2, false},
	0x5B: {NOP, AbsoluteY, 7, false},
	0x5C: {NOP, AbsoluteX, 4, true},
	0x5D: {EOR, AbsoluteX, 4, true},
	0x5E: {LSR, AbsoluteX, 7, false},
	0x5F: {NOP, AbsoluteX, 7, false},

	0x60: {RTS, Implicit, 6, false},
	0x61: {ADC, IndirectX, 6, false},
	0x62: {NOP, Implicit, 2, false},
	0x63: {NOP, IndirectX, 8, false},
	0x64: {NOP, ZeroPage, 3, false},
	0x65: {ADC, ZeroPage, 3, false},
	0x66: {ROR, ZeroPage, 5, false},
	0x67: {NOP, ZeroPage, 5, false},
	0x68: {PLA, Implicit, 4, false},
	0x69: {ADC, Immediate, 2, false},
	0x6A: {ROR, Accumulator, 2, false},
	0x6B: {NOP, Immediate, 2, false},
	0x6C: {JMP, Indirect, 5, false},
	0x6D: {ADC, Absolute, 4, false},
	0x6E: {ROR, Absolute, 6, false},
	0x6F: {NOP, Absolute, 6, false},

	0x70: {BVS, Relative, 2, false},
	0x71: {ADC, IndirectY, 5, true},
	0x72: {NOP, Implicit, 2, false},
	0x73: {NOP, IndirectY, 8, false},
	0x74: {NOP, ZeroPageX, 4, false},
	0x75: {ADC, ZeroPageX, 4, false},
	0x76: {ROR, ZeroPageX, 6, false},
	0x77: {NOP, ZeroPageX, 6, false},
	0x78: {SEI, Implicit, 2, false},
	0x79: {ADC, AbsoluteY, 4, true},
	0x7A: {NOP, Implicit, 2, false},
	0x7B: {NOP, AbsoluteY, 7, false},
	0x7C: {NOP, AbsoluteX, 4, true},
	0x7D: {ADC, AbsoluteX, 4, true},
	0x7E: {ROR, AbsoluteX, 7, false},
	0x7F: {NOP, AbsoluteX, 7, false},

	0x80: {NOP, Immediate, 2, false},
	0x81: {STA, IndirectX, 6, false},
	0x82: {NOP, Immediate, 2, false},
	0x83: {NOP, IndirectX, 6, false},
	0x84: {STY, ZeroPage, 3, false},
	0x85: {STA, ZeroPage, 3, false},
	0x86: {STX, ZeroPage, 3, false},
	0x87: {NOP, ZeroPage, 3, false},
	0x88: {DEY, Implicit, 2, false},
	0x89: {NOP, Immediate, 2, false},
	0x8A: {TXA, Implicit, 2, false},
	0x8B: {NOP, Immediate, 2, false},
	0x8C: {STY, Absolute, 4, false},
	0x8D: {STA, Absolute, 4, false},
	0x8E: {STX, Absolute, 4, false},
	0x8F: {NOP, Absolute, 4, false},

	0x90: {BCC, Relative, 2, false},
	0x91: {STA, IndirectY, 6, false},
	0x92: {NOP, Implicit, 2, false},
	0x93: {NOP, IndirectY, 6, false},
	0x94: {STY, ZeroPageX, 4, false},
	0x95: {STA, ZeroPageX, 4, false},
	0x96: {STX, ZeroPageY, 4, false},
	0x97: {NOP, ZeroPageY, 4, false},
	0x98: {TYA, Implicit, 2, false},
	0x99: {STA, AbsoluteY, 5, false},
	0x9A: {TXS, Implicit, 2, false},
	0x9B: {NOP, AbsoluteY, 5, false},
	0x9C: {NOP, AbsoluteX, 5, false},
	0x9D: {STA, AbsoluteX, 5, false},
	0x9E: {NOP, AbsoluteY, 5, false},
	0x9F: {NOP, AbsoluteY, 5, false},

	0xA0: {LDY, Immediate, 2, false},
	0xA1: {LDA, IndirectX, 6, false},
	0xA2: {LDX, Immediate, 2, false},
	0xA3: {NOP, IndirectX, 6, false},
	0xA4: {LDY, ZeroPage, 3, false},
	0xA5: {LDA, ZeroPage, 3, false},
	0xA6: {LDX, ZeroPage, 3, false},
	0xA7: {NOP, ZeroPage, 3, false},
	0xA8: {TAY, Implicit, 2, false},
	0xA9: {LDA, Immediate, 2, false},
	0xAA: {TAX, Implicit, 2, false},
	0xAB: {NOP, Immediate, 2, false},
	0xAC: {LDY, Absolute, 4, false},
	0xAD: {LDA, Absolute, 4, false},
	0xAE: {LDX, Absolute, 4, false},
	0xAF: {NOP, Absolute, 4, false},

	0xB0: {BCS, Relative, 2, false},
	0xB1: {LDA, IndirectY, 5, true},
	0xB2: {NOP, Implicit, 2, false},
	0xB3: {NOP, IndirectY, 5, true},
	0xB4: {LDY, ZeroPageX, 4, false},
	0xB5: {LDA, ZeroPageX, 4, false},
	0xB6: {LDX, ZeroPageY, 4, false},
	0xB7: {NOP, ZeroPageY, 4, false},
	0xB8: {CLV, Implicit, 2, false},
	0xB9: {LDA, AbsoluteY, 4, true},
	0xBA: {TSX, Implicit, 2, false},
	0xBB: {NOP, AbsoluteY, 4, true},
	0xBC: {LDY, AbsoluteX, 4, true},
	0xBD: {LDA, AbsoluteX, 4, true},
	0xBE: {LDX, AbsoluteY, 4, true},
	0xBF: {NOP, AbsoluteY, 4, true},

	0xC0: {CPY, Immediate, 2, false},
	0xC1: {CMP, IndirectX, 6, false},
	0xC2: {NOP, Immediate, 2, false},
	0xC3: {NOP, IndirectX, 8, false},
	0xC4: {CPY, ZeroPage, 3, false},
	0xC5: {CMP, ZeroPage, 3, false},
	0xC6: {DEC, ZeroPage, 5, false},
	0xC7: {NOP, ZeroPage, 5, false},
	0xC8: {INY, Implicit, 2, false},
	0xC9: {CMP, Immediate, 2, false},
	0xCA: {DEX, Implicit, 2, false},
	0xCB: {NOP, Immediate, 2, false},
	0xCC: {CPY, Absolute, 4, false},
	0xCD: {CMP, Absolute, 4, false},
	0xCE: {DEC, Absolute, 6, false},
	0xCF: {NOP, Absolute, 6, false},

	0xD0: {BNE, Relative, 2, false},
	0xD1: {CMP, IndirectY, 5, true},
	0xD2: {NOP, Implicit, 2, false},
	0xD3: {NOP, IndirectY, 8, false},
	0xD4: {NOP, ZeroPageX, 4, false},
	0xD5: {CMP, ZeroPageX, 4, false},
	0xD6: {DEC, ZeroPageX, 6, false},
	0xD7: {NOP, ZeroPageX, 6, false},
	0xD8: {CLD, Implicit, 2, false},
	0xD9: {CMP, AbsoluteY, 4, true},
	0xDA: {NOP, Implicit, 2, false},
	0xDB: {NOP, AbsoluteY, 7, false},
	0xDC: {NOP, AbsoluteX, 4, true},
	0xDD: {CMP, AbsoluteX, 4, true},
	0xDE: {DEC, AbsoluteX, 7, false},
	0xDF: {NOP, AbsoluteX, 7, false},

	0xE0: {CPX, Immediate, 2, false},
	0xE1: {SBC, IndirectX, 6, false},
	0xE2: {NOP, Immediate, 2, false},
	0xE3: {NOP, IndirectX, 8, false},
	0xE4: {CPX, ZeroPage, 3, false},
	0xE5: {SBC, ZeroPage, 3, false},
	0xE6: {INC, ZeroPage, 5, false},
	0xE7: {NOP, ZeroPage, 5, false},
	0xE8: {INX, Implicit, 2, false},
	0xE9: {SBC, Immediate, 2, false},
	0xEA: {NOP, Implicit, 2, false},
	0xEB: {NOP, Immediate, 2, false},
	0xEC: {CPX, Absolute, 4, false},
	0xED: {SBC, Absolute, 4, false},
	0xEE: {INC, Absolute, 6, false},
	0xEF: {NOP, Absolute, 6, false},

	0xF0: {BEQ, Relative, 2, false},
	0xF1: {SBC, IndirectY, 5, true},
	0xF2: {NOP, Implicit, 2, false},
	0xF3: {NOP, IndirectY, 8, false},
	0xF4: {NOP, ZeroPageX, 4, false},
	0xF5: {SBC, ZeroPageX, 4, false},
	0xF6: {INC, ZeroPageX, 6, false},
	0xF7: {NOP, ZeroPageX, 6, false},
	0xF8: {SED, Implicit, 2, false},
	0xF9: {SBC, AbsoluteY, 4, true},
	0xFA: {NOP, Implicit, 2, false},
	0xFB: {NOP, AbsoluteY, 7, false},
	0xFC: {NOP, AbsoluteX, 4, true},
	0xFD: {SBC, AbsoluteX, 4, true},
	0xFE: {INC, AbsoluteX, 7, false},
	0xFF: {NOP, AbsoluteX, 7, false},
}
