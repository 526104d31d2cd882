package cpu

// readOperand fetches the byte an ASL/LSR/ROL/ROR operation acts on: the
// accumulator for Accumulator mode, memory otherwise.
func (c *CPU) readOperand(addr uint16, mode AddressingMode) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.Bus.Read(addr)
}

// writeOperand stores the result of a dual-mode operation back where
// readOperand took it from.
func (c *CPU) writeOperand(addr uint16, mode AddressingMode, v byte) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.Bus.Write(addr, v)
}

// Load/store

func opLDA(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.A = c.Bus.Read(addr)
	c.SetZN(c.A)
	return 0
}

func opLDX(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.X = c.Bus.Read(addr)
	c.SetZN(c.X)
	return 0
}

func opLDY(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.Y = c.Bus.Read(addr)
	c.SetZN(c.Y)
	return 0
}

func opSTA(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.Bus.Write(addr, c.A)
	return 0
}

func opSTX(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.Bus.Write(addr, c.X)
	return 0
}

func opSTY(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.Bus.Write(addr, c.Y)
	return 0
}

// Register transfer

func opTAX(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.X = c.A
	c.SetZN(c.X)
	return 0
}

func opTAY(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.Y = c.A
	c.SetZN(c.Y)
	return 0
}

func opTXA(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.A = c.X
	c.SetZN(c.A)
	return 0
}

func opTYA(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.A = c.Y
	c.SetZN(c.A)
	return 0
}

func opTSX(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.X = c.SP
	c.SetZN(c.X)
	return 0
}

func opTXS(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.SP = c.X
	return 0
}

// Stack

func opPHA(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.push(c.A)
	return 0
}

func opPHP(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.push(c.P | FlagB | FlagUnused)
	return 0
}

func opPLA(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.A = c.pull()
	c.SetZN(c.A)
	return 0
}

func opPLP(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.P = (c.pull() &^ FlagB) | FlagUnused
	return 0
}

// Arithmetic

func (c *CPU) adc(m byte) {
	a := uint16(c.A)
	var carry uint16
	if c.GetFlag(FlagC) {
		carry = 1
	}
	sum := a + uint16(m) + carry
	c.SetFlag(FlagC, sum > 0xFF)
	result := byte(sum)
	c.SetFlag(FlagV, (byte(a)^result)&(m^result)&0x80 != 0)
	c.A = result
	c.SetZN(c.A)
}

func opADC(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.adc(c.Bus.Read(addr))
	return 0
}

func opSBC(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.adc(c.Bus.Read(addr) ^ 0xFF)
	return 0
}

func (c *CPU) compare(reg byte, m byte) {
	t := int16(reg) - int16(m)
	c.SetFlag(FlagC, reg >= m)
	c.SetZN(byte(t))
}

func opCMP(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.compare(c.A, c.Bus.Read(addr))
	return 0
}

func opCPX(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.compare(c.X, c.Bus.Read(addr))
	return 0
}

func opCPY(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.compare(c.Y, c.Bus.Read(addr))
	return 0
}

// Logical

func opAND(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.A &= c.Bus.Read(addr)
	c.SetZN(c.A)
	return 0
}

func opORA(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.A |= c.Bus.Read(addr)
	c.SetZN(c.A)
	return 0
}

func opEOR(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.A ^= c.Bus.Read(addr)
	c.SetZN(c.A)
	return 0
}

// Shifts/rotates

func opASL(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	v := c.readOperand(addr, mode)
	c.SetFlag(FlagC, v&0x80 != 0)
	v <<= 1
	c.writeOperand(addr, mode, v)
	c.SetZN(v)
	return 0
}

func opLSR(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	v := c.readOperand(addr, mode)
	c.SetFlag(FlagC, v&0x01 != 0)
	v >>= 1
	c.writeOperand(addr, mode, v)
	c.SetZN(v)
	return 0
}

func opROL(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	v := c.readOperand(addr, mode)
	oldCarry := byte(0)
	if c.GetFlag(FlagC) {
		oldCarry = 1
	}
	c.SetFlag(FlagC, v&0x80 != 0)
	v = (v << 1) | oldCarry
	c.writeOperand(addr, mode, v)
	c.SetZN(v)
	return 0
}

func opROR(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	v := c.readOperand(addr, mode)
	oldCarry := byte(0)
	if c.GetFlag(FlagC) {
		oldCarry = 0x80
	}
	c.SetFlag(FlagC, v&0x01 != 0)
	v = (v >> 1) | oldCarry
	c.writeOperand(addr, mode, v)
	c.SetZN(v)
	return 0
}

// Increments/decrements

func opINC(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	v := c.Bus.Read(addr) + 1
	c.Bus.Write(addr, v)
	c.SetZN(v)
	return 0
}

func opDEC(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	v := c.Bus.Read(addr) - 1
	c.Bus.Write(addr, v)
	c.SetZN(v)
	return 0
}

func opINX(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.X++
	c.SetZN(c.X)
	return 0
}

func opDEX(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.X--
	c.SetZN(c.X)
	return 0
}

func opINY(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.Y++
	c.SetZN(c.Y)
	return 0
}

func opDEY(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.Y--
	c.SetZN(c.Y)
	return 0
}

// Bit test

func opBIT(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	m := c.Bus.Read(addr)
	c.SetFlag(FlagZ, c.A&m == 0)
	c.SetFlag(FlagN, m&0x80 != 0)
	c.SetFlag(FlagV, m&0x40 != 0)
	return 0
}

// Branches

// opBranch builds the OpFunc for a conditional branch from its predicate.
// addr is already the resolved target (PC + 1 + sign-extended offset); the
// addressing unit also told us whether that lands on a different page, but
// resolve's crossed bit is computed against the post-operand PC, which is
// exactly the base the official timing charts use for branches too.
func opBranch(taken func(c *CPU) bool) OpFunc {
	return func(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
		if !taken(c) {
			return 0
		}
		extra := 1
		if crossed {
			extra++
		}
		c.PC = addr
		return extra
	}
}

// Jumps/subroutines

func opJMP(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.PC = addr
	return 0
}

func opJSR(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	// PC has already been advanced past the 3-byte JSR instruction, so
	// PC-1 is the address of JSR's own last byte, per spec.
	ret := c.PC - 1
	c.push(byte(ret >> 8))
	c.push(byte(ret))
	c.PC = addr
	return 0
}

func opRTS(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	c.PC = (hi<<8 | lo) + 1
	return 0
}

// Interrupts

// opBRK runs the full software-interrupt sequence. Step intercepts the
// no-handler-installed case before this ever runs (see the BRK halt check
// there), so by the time this executes, the IRQ vector is known non-zero.
func opBRK(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.PC++ // skip the signature byte
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC))
	c.push(c.P | FlagB | FlagUnused)
	c.SetFlag(FlagI, true)
	c.PC = c.Bus.Read16(0xFFFE)
	return 0
}

func opRTI(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.P = (c.pull() &^ FlagB) | FlagUnused
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	c.PC = hi<<8 | lo
	return 0
}

// Flag ops

func opCLC(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.SetFlag(FlagC, false)
	return 0
}

func opSEC(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.SetFlag(FlagC, true)
	return 0
}

func opCLI(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.SetFlag(FlagI, false)
	return 0
}

func opSEI(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.SetFlag(FlagI, true)
	return 0
}

func opCLD(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.SetFlag(FlagD, false)
	return 0
}

func opSED(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.SetFlag(FlagD, true)
	return 0
}

func opCLV(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	c.SetFlag(FlagV, false)
	return 0
}

// No-op

func opNOP(c *CPU, addr uint16, mode AddressingMode, crossed bool) int {
	return 0
}
