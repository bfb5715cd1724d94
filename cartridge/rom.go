package cartridge

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// header is the 16-byte iNES file header.
// Reference: https://www.nesdev.org/wiki/INES
type header struct {
	Magic        [4]byte
	PRGROMChunks byte // 16KiB units
	CHRROMChunks byte // 8KiB units
	Flags6       byte
	Flags7       byte
	PRGRAMSize   byte
	Flags9       byte
	Flags10      byte
	_            [5]byte // unused padding
}

var iNESMagic = [4]byte{'N', 'E', 'S', 0x1A}

const (
	headerSize  = 16
	trainerSize = 512
)

// LoadINES parses an iNES ROM image and returns an NROM cartridge. It is
// the only ROM-loading support this module provides; file loading is an
// external collaborator's job relative to the CPU core itself, but this
// is shipped as the reference implementation the cmd/ driver uses.
//
// PRG-ROM is sized as 16KiB * prgBanks, mirrored across the full
// 0x8000-0xFFFF window when only one bank is present (see DESIGN.md).
func LoadINES(data []byte) (*NROM, error) {
	if len(data) < headerSize {
		return nil, errors.Errorf("ines: file too short for header: %d bytes", len(data))
	}

	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrap(err, "ines: reading header")
	}
	if h.Magic != iNESMagic {
		return nil, errors.Errorf("ines: bad magic bytes %v", h.Magic)
	}

	mapperID := (h.Flags7 & 0xF0) | (h.Flags6 >> 4)
	if mapperID != 0 {
		return nil, errors.Errorf("ines: mapper %d not supported (only NROM/mapper 0)", mapperID)
	}

	if h.PRGROMChunks == 0 {
		return nil, errors.New("ines: zero PRG-ROM banks")
	}

	offset := headerSize
	if h.Flags6&0x04 != 0 {
		offset += trainerSize
	}

	prgSize := int(h.PRGROMChunks) * prgBankSize
	if offset+prgSize > len(data) {
		return nil, errors.Errorf("ines: truncated PRG-ROM: want %d bytes at offset %d, have %d total", prgSize, offset, len(data))
	}
	prg := data[offset : offset+prgSize]
	offset += prgSize

	chrSize := int(h.CHRROMChunks) * chrBankSize
	var chr []byte
	if chrSize > 0 {
		if offset+chrSize > len(data) {
			return nil, errors.Errorf("ines: truncated CHR-ROM: want %d bytes at offset %d, have %d total", chrSize, offset, len(data))
		}
		chr = data[offset : offset+chrSize]
	}

	return NewNROM(prg, chr), nil
}
