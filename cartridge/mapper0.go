package cartridge

const (
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
	prgRAMSize  = 8 * 1024

	prgRAMBase = 0x6000
	prgRAMTop  = 0x7FFF
	prgROMBase = 0x8000
)

// NROM implements mapper 0, the simplest NES mapper: a fixed 16KiB or 32KiB
// PRG-ROM bank (mirrored across 0x8000-0xFFFF if only one bank is present),
// 8KiB of battery-backed PRG-RAM at 0x6000-0x7FFF, and fixed CHR memory.
type NROM struct {
	prg []byte
	chr []byte
	ram [prgRAMSize]byte

	prgBanks int
}

// NewNROM builds an NROM cartridge from already-extracted PRG and CHR ROM
// images. prg must be a multiple of 16KiB; chr may be empty (CHR-RAM is not
// modeled since the PPU is a stub in this core).
func NewNROM(prg, chr []byte) *NROM {
	return &NROM{
		prg:      prg,
		chr:      chr,
		prgBanks: len(prg) / prgBankSize,
	}
}

// Read implements Cartridge.
func (n *NROM) Read(addr uint16) uint8 {
	switch {
	case addr >= prgRAMBase && addr <= prgRAMTop:
		return n.ram[addr-prgRAMBase]
	case addr >= prgROMBase:
		return n.prg[n.mapPRG(addr)]
	default:
		return 0
	}
}

// Write implements Cartridge. Writes to PRG-RAM mutate the battery-backed
// save RAM; writes to PRG-ROM are accepted silently, matching hardware.
func (n *NROM) Write(addr uint16, val uint8) {
	switch {
	case addr >= prgRAMBase && addr <= prgRAMTop:
		n.ram[addr-prgRAMBase] = val
	case addr >= prgROMBase:
		// Silently dropped: PRG-ROM is not writable.
	}
}

// mapPRG reduces a CPU address in 0x8000-0xFFFF to an index into prg,
// mirroring a single 16KiB bank across the full 32KiB window.
func (n *NROM) mapPRG(addr uint16) uint16 {
	offset := addr - prgROMBase
	if n.prgBanks <= 1 {
		return offset % prgBankSize
	}
	return offset % uint16(len(n.prg))
}

// ReadCHR exposes character memory for a (stubbed) PPU's benefit. The CPU
// core never calls this.
func (n *NROM) ReadCHR(addr uint16) uint8 {
	if int(addr) >= len(n.chr) {
		return 0
	}
	return n.chr[addr]
}
