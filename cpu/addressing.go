package cpu

// An AddressingMode tells the executor how to resolve the effective address
// an operation reads or writes. There are thirteen modes; PC always points
// at the first operand byte (or is past the whole instruction, for
// Implicit/Accumulator) when resolve is called, and resolve never advances
// it itself — the executor advances PC by the opcode's byte count.
type AddressingMode int

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// resolve computes the effective address for mode and whether the access
// crosses a page boundary, per the table in the addressing-mode
// specification. It never mutates PC.
func (c *CPU) resolve(mode AddressingMode) (addr uint16, crossed bool) {
	switch mode {
	case Implicit, Accumulator:
		return 0, false

	case Immediate:
		return c.PC, false

	case ZeroPage:
		return uint16(c.Bus.Read(c.PC)), false

	case ZeroPageX:
		// the +X add is byte arithmetic, so it wraps at 0xFF without
		// ever escaping page zero
		return uint16(c.Bus.Read(c.PC) + c.X), false

	case ZeroPageY:
		return uint16(c.Bus.Read(c.PC) + c.Y), false

	case Relative:
		offset := int8(c.Bus.Read(c.PC))
		base := c.PC + 1
		addr = uint16(int32(base) + int32(offset))
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case Absolute:
		return c.Bus.Read16(c.PC), false

	case AbsoluteX:
		base := c.Bus.Read16(c.PC)
		addr = base + uint16(c.X)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case AbsoluteY:
		base := c.Bus.Read16(c.PC)
		addr = base + uint16(c.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case Indirect:
		ptr := c.Bus.Read16(c.PC)
		return c.Bus.Read16Bug(ptr), false

	case IndirectX:
		// zero-page wrap applies to the pointer byte itself
		zp := c.Bus.Read(c.PC) + c.X
		return c.readZeroPage16(zp), false

	case IndirectY:
		zp := c.Bus.Read(c.PC)
		base := c.readZeroPage16(zp)
		addr = base + uint16(c.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)
	}

	return 0, false
}

// readZeroPage16 reads a little-endian word from page zero whose pointer's
// high byte wraps within page zero rather than escaping into page one —
// i.e. a pointer of 0xFF pairs with byte 0x00, not byte 0x100.
func (c *CPU) readZeroPage16(ptr byte) uint16 {
	lo := uint16(c.Bus.Read(uint16(ptr)))
	hi := uint16(c.Bus.Read(uint16(ptr + 1)))
	return hi<<8 | lo
}
