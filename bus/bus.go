// Package bus implements the address-space router: a pure function of
// a 16-bit address that demultiplexes reads and writes to zero-page
// RAM, the stack page, general internal RAM (mirrored four times
// across 0x0000-0x1FFF), the PPU and APU/IO stub register windows, or
// a cartridge handle.
package bus

import "github.com/n-ulricksen/nes6502core/cartridge"

const (
	zeroPageSize   = 0x100
	stackSize      = 0x100
	internalRAMLow = 0x0200
	internalRAMTop = 0x07FF
	internalRAMLen = internalRAMTop - internalRAMLow + 1 // 0x0600

	mirrorTop = 0x1FFF
	mirrorLen = 0x0800 // 2KiB mirrored unit

	ppuLow  = 0x2000
	ppuTop  = 0x3FFF
	apuLow  = 0x4000
	apuTop  = 0x401F
	cartLow = 0x4020
)

// Bus owns the three internal RAM regions and a cartridge handle; the
// CPU core talks to memory exclusively through this type's Read/Write
// methods. The cartridge range covers 0x4020-0xFFFF (see DESIGN.md for
// why this is wider than some reference emulators' hardcoded 0x8000).
type Bus struct {
	zeroPage     [zeroPageSize]byte
	stack        [stackSize]byte
	internalRAM  [internalRAMLen]byte
	cart         cartridge.Cartridge
	ppu          ppuStub
	apu          apuStub
	oamDMALatch  bool
	oamDMAPage   uint8
}

// New constructs a Bus wired to the given cartridge. RAM starts zeroed.
func New(cart cartridge.Cartridge) *Bus {
	return &Bus{cart: cart}
}

// Read implements the router's read path.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= mirrorTop:
		return b.readRAM(addr % mirrorLen)
	case addr >= ppuLow && addr <= ppuTop:
		return b.ppu.read((addr - ppuLow) % 8)
	case addr >= apuLow && addr <= apuTop:
		return b.apu.read(addr)
	default: // addr >= cartLow
		return b.cart.Read(addr)
	}
}

// Write implements the router's write path.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= mirrorTop:
		b.writeRAM(addr%mirrorLen, val)
	case addr >= ppuLow && addr <= ppuTop:
		b.ppu.write((addr-ppuLow)%8, val)
	case addr == oamDMAAddr:
		b.oamDMALatch = true
		b.oamDMAPage = val
	case addr >= apuLow && addr <= apuTop:
		b.apu.write(addr, val)
	default: // addr >= cartLow
		b.cart.Write(addr, val)
	}
}

// readRAM routes an address already reduced into 0x0000-0x07FF to one of
// the three internal-RAM sinks.
func (b *Bus) readRAM(addr uint16) uint8 {
	switch {
	case addr < zeroPageSize:
		return b.zeroPage[addr]
	case addr < zeroPageSize+stackSize:
		return b.stack[addr-zeroPageSize]
	default:
		return b.internalRAM[addr-internalRAMLow]
	}
}

func (b *Bus) writeRAM(addr uint16, val uint8) {
	switch {
	case addr < zeroPageSize:
		b.zeroPage[addr] = val
	case addr < zeroPageSize+stackSize:
		b.stack[addr-zeroPageSize] = val
	default:
		b.internalRAM[addr-internalRAMLow] = val
	}
}

// TakeOAMDMA reports whether an instruction's execution wrote to the
// OAM-DMA trigger register (0x4014) since the last call, returning the
// page byte that was written and clearing the latch. The cpu package
// uses this (via an optional-interface assertion) to apply the 513/514
// cycle DMA-burst penalty; the core does not otherwise know or care
// about OAM.
func (b *Bus) TakeOAMDMA() (page uint8, triggered bool) {
	if !b.oamDMALatch {
		return 0, false
	}
	b.oamDMALatch = false
	return b.oamDMAPage, true
}
