package cpu

// AddressingMode names one of the 6502's 13 operand-fetch shapes. Each
// one resolves to a small tagged-variant value rather than being
// modeled as its own object -- EffectiveAccess below is that variant.
type AddressingMode int

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	Relative
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

type accessKind int

const (
	accessMemory accessKind = iota
	accessAccumulator
	accessImplicit
)

// EffectiveAccess is the resolved operand location for one instruction:
// either a memory address, the accumulator, or nothing at all (implicit
// operand instructions like CLC/TAX). Instruction bodies read and write
// through it without needing to know which addressing mode produced it.
type EffectiveAccess struct {
	kind        accessKind
	addr        uint16
	pageCrossed bool
}

// TargetAddress returns the resolved memory address. It is meaningless
// for accumulator/implicit access and is used directly by JMP/JSR.
func (ea EffectiveAccess) TargetAddress() uint16 {
	return ea.addr
}

// PageCrossed reports whether forming this address crossed a page
// boundary, for the indexed read-mode +1-cycle penalty.
func (ea EffectiveAccess) PageCrossed() bool {
	return ea.pageCrossed
}

// Read fetches the operand value through an EffectiveAccess.
func (c *Chip) Read(ea EffectiveAccess) uint8 {
	switch ea.kind {
	case accessAccumulator:
		return c.A
	case accessImplicit:
		return 0
	default:
		return c.readByte(ea.addr)
	}
}

// Write stores a value through an EffectiveAccess.
func (c *Chip) Write(ea EffectiveAccess, v uint8) {
	switch ea.kind {
	case accessAccumulator:
		c.A = v
	case accessImplicit:
		// no destination; instructions that use implicit mode never call Write
	default:
		c.writeByte(ea.addr, v)
	}
}

func memAccess(addr uint16, crossed bool) EffectiveAccess {
	return EffectiveAccess{kind: accessMemory, addr: addr, pageCrossed: crossed}
}

// resolve fetches whatever operand bytes mode requires (advancing PC as
// it goes) and returns the resulting EffectiveAccess plus whether
// forming the address crossed a page boundary.
func (c *Chip) resolve(mode AddressingMode) (EffectiveAccess, bool) {
	switch mode {
	case Implicit:
		return EffectiveAccess{kind: accessImplicit}, false

	case Accumulator:
		return EffectiveAccess{kind: accessAccumulator}, false

	case Immediate:
		addr := c.PC
		c.PC++
		return memAccess(addr, false), false

	case Relative:
		offset := int8(c.readByte(c.PC))
		c.PC++
		base := c.PC
		target := uint16(int32(base) + int32(offset))
		crossed := base&0xFF00 != target&0xFF00
		return memAccess(target, crossed), crossed

	case ZeroPage:
		addr := uint16(c.readByte(c.PC))
		c.PC++
		return memAccess(addr, false), false

	case ZeroPageX:
		operand := c.readByte(c.PC)
		c.PC++
		addr := uint16(operand + c.X)
		return memAccess(addr, false), false

	case ZeroPageY:
		operand := c.readByte(c.PC)
		c.PC++
		addr := uint16(operand + c.Y)
		return memAccess(addr, false), false

	case Absolute:
		addr := c.readWord(c.PC)
		c.PC += 2
		return memAccess(addr, false), false

	case AbsoluteX:
		base := c.readWord(c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		crossed := base&0xFF00 != addr&0xFF00
		return memAccess(addr, crossed), crossed

	case AbsoluteY:
		base := c.readWord(c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		crossed := base&0xFF00 != addr&0xFF00
		return memAccess(addr, crossed), crossed

	case Indirect:
		ptr := c.readWord(c.PC)
		c.PC += 2
		addr := c.readIndirectWord(ptr)
		return memAccess(addr, false), false

	case IndirectX:
		operand := c.readByte(c.PC)
		c.PC++
		zp := uint16(operand + c.X)
		lo := uint16(c.readByte(zp & 0x00FF))
		hi := uint16(c.readByte((zp + 1) & 0x00FF))
		addr := hi<<8 | lo
		return memAccess(addr, false), false

	case IndirectY:
		operand := c.readByte(c.PC)
		c.PC++
		zp := uint16(operand)
		lo := uint16(c.readByte(zp))
		hi := uint16(c.readByte((zp + 1) & 0x00FF))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		crossed := base&0xFF00 != addr&0xFF00
		return memAccess(addr, crossed), crossed

	default:
		return EffectiveAccess{kind: accessImplicit}, false
	}
}

// readIndirectWord reproduces the NMOS 6502's indirect-JMP page-wrap
// bug: if the pointer's low byte is 0xFF, the high byte of the target
// is fetched from the start of the same page instead of the next one
// (see DESIGN.md).
func (c *Chip) readIndirectWord(ptr uint16) uint16 {
	lo := uint16(c.readByte(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.readByte(hiAddr))
	return hi<<8 | lo
}
