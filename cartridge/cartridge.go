// Package cartridge defines the minimal capability the CPU core needs from
// a game cartridge, plus a reference NROM (mapper 0) implementation and an
// iNES file loader. Neither the loader nor any mapper beyond NROM is part
// of the core's contract -- the core only ever holds a Cartridge handle.
package cartridge

// Cartridge is the capability the bus router forwards addresses >= 0x4020
// to. Reads are side-effect free except for mapper bank-switching
// registers, which NROM (mapper 0) does not have.
type Cartridge interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}
