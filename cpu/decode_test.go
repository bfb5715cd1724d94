package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every slot must be populated; an unset slot would be a zero-value
// opcodeEntry (ADC, Implicit) with a base cycle count of 0.
func TestOpcodeTableHasNoGaps(t *testing.T) {
	for i := 0; i < 256; i++ {
		entry := opcodeTable[i]
		assert.LessOrEqual(t, int(entry.mode), int(IndirectY))
		assert.NotZero(t, entry.cycles, "opcode %#x has no base cycle count", i)
	}
}

func TestUndocumentedOpcodesDecodeToNOP(t *testing.T) {
	illegal := []uint8{0x02, 0x03, 0x04, 0x0B, 0x1A, 0xEB, 0xFF}
	for _, op := range illegal {
		assert.Equal(t, NOP, opcodeTable[op].instr, "opcode %#x", op)
	}
}

func TestKnownOfficialOpcodesDecodeCorrectly(t *testing.T) {
	cases := []struct {
		op    uint8
		instr InstructionID
		mode  AddressingMode
	}{
		{0xA9, LDA, Immediate},
		{0x8D, STA, Absolute},
		{0x00, BRK, Implicit},
		{0x6C, JMP, Indirect},
		{0x4C, JMP, Absolute},
		{0x20, JSR, Absolute},
		{0xEA, NOP, Implicit},
	}
	for _, tc := range cases {
		entry := opcodeTable[tc.op]
		assert.Equal(t, tc.instr, entry.instr, "opcode %#x instr", tc.op)
		assert.Equal(t, tc.mode, entry.mode, "opcode %#x mode", tc.op)
	}
}
