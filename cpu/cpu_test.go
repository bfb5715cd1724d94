package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// flatMemory is a trivial 64KiB Memory fake for CPU-level tests that
// don't need the bus's mirroring/stub behavior.
type flatMemory [65536]byte

func (m *flatMemory) Read(addr uint16) uint8      { return m[addr] }
func (m *flatMemory) Write(addr uint16, v uint8) { m[addr] = v }

func newTestChip(program ...uint8) (*Chip, *flatMemory) {
	mem := &flatMemory{}
	for i, b := range program {
		mem[0x8000+i] = b
	}
	mem[0xFFFC] = 0x00
	mem[0xFFFD] = 0x80
	c := New(mem)
	return c, mem
}

func TestResetVectorAndInitialState(t *testing.T) {
	c, _ := newTestChip()
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint8(0xFD), c.S)
	assert.True(t, c.getFlag(FlagI))
	assert.Equal(t, uint64(7), c.Cycles())
}

func TestLDAImmediateSetsAccumulatorAndFlags(t *testing.T) {
	c, _ := newTestChip(0xA9, 0x00) // LDA #$00
	cycles := c.Step()
	assert.Equal(t, uint8(0), c.A)
	assert.True(t, c.getFlag(FlagZ))
	assert.False(t, c.getFlag(FlagN))
	assert.Equal(t, uint64(2), cycles)
}

func TestLDAImmediateNegativeSetsN(t *testing.T) {
	c, _ := newTestChip(0xA9, 0x80)
	c.Step()
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.getFlag(FlagN))
	assert.False(t, c.getFlag(FlagZ))
}

func TestADCWithCarryIn(t *testing.T) {
	c, _ := newTestChip(0x69, 0x01) // ADC #$01
	c.A = 0x01
	c.setFlag(FlagC, true)
	c.Step()
	assert.Equal(t, uint8(0x03), c.A, "1 + 1 + carry-in(1) = 3")
	assert.False(t, c.getFlag(FlagC))
}

func TestADCSignedOverflow(t *testing.T) {
	c, _ := newTestChip(0x69, 0x01) // ADC #$01
	c.A = 0x7F
	c.Step()
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.getFlag(FlagV), "0x7F + 1 overflows into negative range")
	assert.True(t, c.getFlag(FlagN))
}

func TestSBCCanonicalFormula(t *testing.T) {
	c, _ := newTestChip(0xE9, 0x01) // SBC #$01
	c.A = 0x05
	c.setFlag(FlagC, true) // carry set = no borrow
	c.Step()
	assert.Equal(t, uint8(0x04), c.A)
	assert.True(t, c.getFlag(FlagC), "no borrow occurred")
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	c, mem := newTestChip(0xBD, 0xFF, 0x00) // LDA $00FF,X
	c.X = 0x01                              // crosses into page 1
	mem[0x0100] = 0x42
	cycles := c.Step()
	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint64(5), cycles, "base 4 + 1 for page cross")
}

func TestAbsoluteXNoPageCrossStaysBaseCycles(t *testing.T) {
	c, mem := newTestChip(0xBD, 0x00, 0x00) // LDA $0000,X
	c.X = 0x01
	mem[0x0001] = 0x42
	cycles := c.Step()
	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint64(4), cycles)
}

func TestBCCBranchTakenSamePage(t *testing.T) {
	c, _ := newTestChip(0x90, 0x02) // BCC +2
	cycles := c.Step()
	assert.Equal(t, uint16(0x8004), c.PC)
	assert.Equal(t, uint64(3), cycles, "base 2 + 1 taken")
}

func TestBCCBranchNotTaken(t *testing.T) {
	c, _ := newTestChip(0x90, 0x02)
	c.setFlag(FlagC, true)
	cycles := c.Step()
	assert.Equal(t, uint16(0x8002), c.PC)
	assert.Equal(t, uint64(2), cycles)
}

func TestJSRThenRTSRoundTrip(t *testing.T) {
	c, mem := newTestChip(0x20, 0x00, 0x90) // JSR $9000
	mem[0x9000] = 0x60                      // RTS
	c.Step()                                // JSR
	assert.Equal(t, uint16(0x9000), c.PC)

	c.Step() // RTS
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestBRKPushesPCAndStatusThenJumpsToIRQVector(t *testing.T) {
	c, mem := newTestChip(0x00) // BRK
	mem[0xFFFE] = 0x00
	mem[0xFFFF] = 0x90
	startS := c.S
	c.Step()

	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.getFlag(FlagI))
	assert.Equal(t, startS-3, c.S)

	pushedP := mem[0x0100+uint16(c.S)+1]
	assert.NotZero(t, pushedP&FlagB, "BRK must push B set")
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, mem := newTestChip(0x6C, 0xFF, 0x02) // JMP ($02FF)
	mem[0x02FF] = 0x00
	mem[0x0200] = 0x80 // hi byte read wraps to 0x0200, not 0x0300
	mem[0x0300] = 0xFF // if the bug were absent, this would be picked up
	c.Step()
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestOAMDMAStallCycles(t *testing.T) {
	src := &dmaMemory{}
	src.prg[0] = 0xEA // NOP, so the stall is the only thing under test
	c := New(src)
	src.triggered = true

	before := c.Cycles()
	c.Step()
	assert.GreaterOrEqual(t, c.Cycles()-before, uint64(513))
}

// dmaMemory is a Memory fake that also implements oamDMASource, used to
// exercise the optional-interface OAM-DMA stall path in Step.
type dmaMemory struct {
	prg       [0x8000]byte
	triggered bool
}

func (m *dmaMemory) Read(addr uint16) uint8 {
	if addr == 0xFFFC {
		return 0x00
	}
	if addr == 0xFFFD {
		return 0x80
	}
	if addr >= 0x8000 {
		return m.prg[addr-0x8000]
	}
	return 0
}

func (m *dmaMemory) Write(addr uint16, v uint8) {}

func (m *dmaMemory) TakeOAMDMA() (uint8, bool) {
	if m.triggered {
		m.triggered = false
		return 0x02, true
	}
	return 0, false
}
