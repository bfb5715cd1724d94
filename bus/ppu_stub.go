package bus

// ppuRegisterNames documents the eight PPU registers mirrored across
// 0x2000-0x3FFF. The PPU itself is out of scope for this core; trace/
// debug tooling uses this purely for readability.
var ppuRegisterNames = [8]string{
	"PPUCTRL",
	"PPUMASK",
	"PPUSTATUS",
	"OAMADDR",
	"OAMDATA",
	"PPUSCROLL",
	"PPUADDR",
	"PPUDATA",
}

// ppuStub is the register window the PPU would occupy at 0x2000-0x3FFF.
// Reads always return 0 and writes are discarded; the PPU itself is not
// modeled by this module.
type ppuStub struct{}

func (ppuStub) read(reg uint16) uint8    { return 0 }
func (ppuStub) write(reg uint16, v uint8) {}

// RegisterName returns the mnemonic for a PPU register index (0-7), for
// use by trace/debug output.
func RegisterName(reg uint16) string {
	return ppuRegisterNames[reg&7]
}
