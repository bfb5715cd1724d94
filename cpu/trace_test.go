package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceFormatsAddressOpcodesAndMnemonic(t *testing.T) {
	c, _ := newTestChip(0x4C, 0xF5, 0xC5) // JMP $C5F5
	line := c.Trace()

	assert.True(t, strings.HasPrefix(line, "8000  4C F5 C5  JMP"))
	assert.Contains(t, line, "A:00")
	assert.Contains(t, line, "X:00")
	assert.Contains(t, line, "Y:00")
	assert.Contains(t, line, "SP:FD")
	assert.Contains(t, line, "CYC:7")
}

func TestTraceDoesNotMutateState(t *testing.T) {
	c, _ := newTestChip(0xA9, 0x42) // LDA #$42
	_ = c.Trace()
	assert.Equal(t, uint16(0x8000), c.PC, "Trace must not advance PC")
	assert.Equal(t, uint8(0), c.A, "Trace must not execute the instruction")
}
