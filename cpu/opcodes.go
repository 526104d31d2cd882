package cpu

// An OpFunc executes one operation's body. addr and crossed come from the
// addressing unit (resolve); mode is passed through so dual-mode
// instructions (ASL/LSR/ROL/ROR) can tell Accumulator apart from memory
// without a second dispatch table. It returns any cycles beyond base +
// page-cross penalty — only branch instructions use this, for the
// taken/crossed bonuses.
type OpFunc func(c *CPU, addr uint16, mode AddressingMode, crossed bool) int

// Opcode is the immutable descriptor for one legal opcode byte.
type Opcode struct {
	Mnemonic    string
	Mode        AddressingMode
	Bytes       int
	BaseCycles  int
	PagePenalty bool
	Exec        OpFunc
}

// opcodeTable is the single source of truth for decode: a 256-entry flat
// array keyed by opcode byte, nil for every byte with no legal
// instruction. It is built once in init and never mutated afterward, so it
// may be shared read-only across CPU instances.
var opcodeTable [256]*Opcode

// reg registers one opcode descriptor. It panics on a duplicate byte key —
// a bug in this file, never a runtime condition — so the table is provably
// free of the kind of duplicate-key mistake the reference implementation
// made.
func reg(b byte, mnemonic string, mode AddressingMode, bytes, cycles int, penalty bool, fn OpFunc) {
	if opcodeTable[b] != nil {
		panic("cpu: duplicate opcode registration for byte 0x" + hexByte(b))
	}
	opcodeTable[b] = &Opcode{
		Mnemonic:    mnemonic,
		Mode:        mode,
		Bytes:       bytes,
		BaseCycles:  cycles,
		PagePenalty: penalty,
		Exec:        fn,
	}
}

func hexByte(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0xF]})
}

func init() {
	// Load/store
	reg(0xA9, "LDA", Immediate, 2, 2, false, opLDA)
	reg(0xA5, "LDA", ZeroPage, 2, 3, false, opLDA)
	reg(0xB5, "LDA", ZeroPageX, 2, 4, false, opLDA)
	reg(0xAD, "LDA", Absolute, 3, 4, false, opLDA)
	reg(0xBD, "LDA", AbsoluteX, 3, 4, true, opLDA)
	reg(0xB9, "LDA", AbsoluteY, 3, 4, true, opLDA)
	reg(0xA1, "LDA", IndirectX, 2, 6, false, opLDA)
	reg(0xB1, "LDA", IndirectY, 2, 5, true, opLDA)

	reg(0xA2, "LDX", Immediate, 2, 2, false, opLDX)
	reg(0xA6, "LDX", ZeroPage, 2, 3, false, opLDX)
	reg(0xB6, "LDX", ZeroPageY, 2, 4, false, opLDX)
	reg(0xAE, "LDX", Absolute, 3, 4, false, opLDX)
	reg(0xBE, "LDX", AbsoluteY, 3, 4, true, opLDX)

	reg(0xA0, "LDY", Immediate, 2, 2, false, opLDY)
	reg(0xA4, "LDY", ZeroPage, 2, 3, false, opLDY)
	reg(0xB4, "LDY", ZeroPageX, 2, 4, false, opLDY)
	reg(0xAC, "LDY", Absolute, 3, 4, false, opLDY)
	reg(0xBC, "LDY", AbsoluteX, 3, 4, true, opLDY)

	reg(0x85, "STA", ZeroPage, 2, 3, false, opSTA)
	reg(0x95, "STA", ZeroPageX, 2, 4, false, opSTA)
	reg(0x8D, "STA", Absolute, 3, 4, false, opSTA)
	reg(0x9D, "STA", AbsoluteX, 3, 5, false, opSTA)
	reg(0x99, "STA", AbsoluteY, 3, 5, false, opSTA)
	reg(0x81, "STA", IndirectX, 2, 6, false, opSTA)
	reg(0x91, "STA", IndirectY, 2, 6, false, opSTA)

	reg(0x86, "STX", ZeroPage, 2, 3, false, opSTX)
	reg(0x96, "STX", ZeroPageY, 2, 4, false, opSTX)
	reg(0x8E, "STX", Absolute, 3, 4, false, opSTX)

	reg(0x84, "STY", ZeroPage, 2, 3, false, opSTY)
	reg(0x94, "STY", ZeroPageX, 2, 4, false, opSTY)
	reg(0x8C, "STY", Absolute, 3, 4, false, opSTY)

	// Register transfer
	reg(0xAA, "TAX", Implicit, 1, 2, false, opTAX)
	reg(0xA8, "TAY", Implicit, 1, 2, false, opTAY)
	reg(0x8A, "TXA", Implicit, 1, 2, false, opTXA)
	reg(0x98, "TYA", Implicit, 1, 2, false, opTYA)
	reg(0xBA, "TSX", Implicit, 1, 2, false, opTSX)
	reg(0x9A, "TXS", Implicit, 1, 2, false, opTXS)

	// Stack
	reg(0x48, "PHA", Implicit, 1, 3, false, opPHA)
	reg(0x08, "PHP", Implicit, 1, 3, false, opPHP)
	reg(0x68, "PLA", Implicit, 1, 4, false, opPLA)
	reg(0x28, "PLP", Implicit, 1, 4, false, opPLP)

	// Arithmetic
	reg(0x69, "ADC", Immediate, 2, 2, false, opADC)
	reg(0x65, "ADC", ZeroPage, 2, 3, false, opADC)
	reg(0x75, "ADC", ZeroPageX, 2, 4, false, opADC)
	reg(0x6D, "ADC", Absolute, 3, 4, false, opADC)
	reg(0x7D, "ADC", AbsoluteX, 3, 4, true, opADC)
	reg(0x79, "ADC", AbsoluteY, 3, 4, true, opADC)
	reg(0x61, "ADC", IndirectX, 2, 6, false, opADC)
	reg(0x71, "ADC", IndirectY, 2, 5, true, opADC)

	reg(0xE9, "SBC", Immediate, 2, 2, false, opSBC)
	reg(0xE5, "SBC", ZeroPage, 2, 3, false, opSBC)
	reg(0xF5, "SBC", ZeroPageX, 2, 4, false, opSBC)
	reg(0xED, "SBC", Absolute, 3, 4, false, opSBC)
	reg(0xFD, "SBC", AbsoluteX, 3, 4, true, opSBC)
	reg(0xF9, "SBC", AbsoluteY, 3, 4, true, opSBC)
	reg(0xE1, "SBC", IndirectX, 2, 6, false, opSBC)
	reg(0xF1, "SBC", IndirectY, 2, 5, true, opSBC)

	reg(0xC9, "CMP", Immediate, 2, 2, false, opCMP)
	reg(0xC5, "CMP", ZeroPage, 2, 3, false, opCMP)
	reg(0xD5, "CMP", ZeroPageX, 2, 4, false, opCMP)
	reg(0xCD, "CMP", Absolute, 3, 4, false, opCMP)
	reg(0xDD, "CMP", AbsoluteX, 3, 4, true, opCMP)
	reg(0xD9, "CMP", AbsoluteY, 3, 4, true, opCMP)
	reg(0xC1, "CMP", IndirectX, 2, 6, false, opCMP)
	reg(0xD1, "CMP", IndirectY, 2, 5, true, opCMP)

	reg(0xE0, "CPX", Immediate, 2, 2, false, opCPX)
	reg(0xE4, "CPX", ZeroPage, 2, 3, false, opCPX)
	reg(0xEC, "CPX", Absolute, 3, 4, false, opCPX)

	reg(0xC0, "CPY", Immediate, 2, 2, false, opCPY)
	reg(0xC4, "CPY", ZeroPage, 2, 3, false, opCPY)
	reg(0xCC, "CPY", Absolute, 3, 4, false, opCPY)

	// Logical
	reg(0x29, "AND", Immediate, 2, 2, false, opAND)
	reg(0x25, "AND", ZeroPage, 2, 3, false, opAND)
	reg(0x35, "AND", ZeroPageX, 2, 4, false, opAND)
	reg(0x2D, "AND", Absolute, 3, 4, false, opAND)
	reg(0x3D, "AND", AbsoluteX, 3, 4, true, opAND)
	reg(0x39, "AND", AbsoluteY, 3, 4, true, opAND)
	reg(0x21, "AND", IndirectX, 2, 6, false, opAND)
	reg(0x31, "AND", IndirectY, 2, 5, true, opAND)

	reg(0x09, "ORA", Immediate, 2, 2, false, opORA)
	reg(0x05, "ORA", ZeroPage, 2, 3, false, opORA)
	reg(0x15, "ORA", ZeroPageX, 2, 4, false, opORA)
	reg(0x0D, "ORA", Absolute, 3, 4, false, opORA)
	reg(0x1D, "ORA", AbsoluteX, 3, 4, true, opORA)
	reg(0x19, "ORA", AbsoluteY, 3, 4, true, opORA)
	reg(0x01, "ORA", IndirectX, 2, 6, false, opORA)
	reg(0x11, "ORA", IndirectY, 2, 5, true, opORA)

	reg(0x49, "EOR", Immediate, 2, 2, false, opEOR)
	reg(0x45, "EOR", ZeroPage, 2, 3, false, opEOR)
	reg(0x55, "EOR", ZeroPageX, 2, 4, false, opEOR)
	reg(0x4D, "EOR", Absolute, 3, 4, false, opEOR)
	reg(0x5D, "EOR", AbsoluteX, 3, 4, true, opEOR)
	reg(0x59, "EOR", AbsoluteY, 3, 4, true, opEOR)
	reg(0x41, "EOR", IndirectX, 2, 6, false, opEOR)
	reg(0x51, "EOR", IndirectY, 2, 5, true, opEOR)

	// Shifts/rotates
	reg(0x0A, "ASL", Accumulator, 1, 2, false, opASL)
	reg(0x06, "ASL", ZeroPage, 2, 5, false, opASL)
	reg(0x16, "ASL", ZeroPageX, 2, 6, false, opASL)
	reg(0x0E, "ASL", Absolute, 3, 6, false, opASL)
	reg(0x1E, "ASL", AbsoluteX, 3, 7, false, opASL)

	reg(0x4A, "LSR", Accumulator, 1, 2, false, opLSR)
	reg(0x46, "LSR", ZeroPage, 2, 5, false, opLSR)
	reg(0x56, "LSR", ZeroPageX, 2, 6, false, opLSR)
	reg(0x4E, "LSR", Absolute, 3, 6, false, opLSR)
	reg(0x5E, "LSR", AbsoluteX, 3, 7, false, opLSR)

	reg(0x2A, "ROL", Accumulator, 1, 2, false, opROL)
	reg(0x26, "ROL", ZeroPage, 2, 5, false, opROL)
	reg(0x36, "ROL", ZeroPageX, 2, 6, false, opROL)
	reg(0x2E, "ROL", Absolute, 3, 6, false, opROL)
	reg(0x3E, "ROL", AbsoluteX, 3, 7, false, opROL)

	reg(0x6A, "ROR", Accumulator, 1, 2, false, opROR)
	reg(0x66, "ROR", ZeroPage, 2, 5, false, opROR)
	reg(0x76, "ROR", ZeroPageX, 2, 6, false, opROR)
	reg(0x6E, "ROR", Absolute, 3, 6, false, opROR)
	reg(0x7E, "ROR", AbsoluteX, 3, 7, false, opROR)

	// Increments/decrements
	reg(0xE6, "INC", ZeroPage, 2, 5, false, opINC)
	reg(0xF6, "INC", ZeroPageX, 2, 6, false, opINC)
	reg(0xEE, "INC", Absolute, 3, 6, false, opINC)
	reg(0xFE, "INC", AbsoluteX, 3, 7, false, opINC)

	reg(0xC6, "DEC", ZeroPage, 2, 5, false, opDEC)
	reg(0xD6, "DEC", ZeroPageX, 2, 6, false, opDEC)
	reg(0xCE, "DEC", Absolute, 3, 6, false, opDEC)
	reg(0xDE, "DEC", AbsoluteX, 3, 7, false, opDEC)

	reg(0xE8, "INX", Implicit, 1, 2, false, opINX)
	reg(0xCA, "DEX", Implicit, 1, 2, false, opDEX)
	reg(0xC8, "INY", Implicit, 1, 2, false, opINY)
	reg(0x88, "DEY", Implicit, 1, 2, false, opDEY)

	// Bit test
	reg(0x24, "BIT", ZeroPage, 2, 3, false, opBIT)
	reg(0x2C, "BIT", Absolute, 3, 4, false, opBIT)

	// Branches
	reg(0x10, "BPL", Relative, 2, 2, false, opBranch(func(c *CPU) bool { return !c.GetFlag(FlagN) }))
	reg(0x30, "BMI", Relative, 2, 2, false, opBranch(func(c *CPU) bool { return c.GetFlag(FlagN) }))
	reg(0x50, "BVC", Relative, 2, 2, false, opBranch(func(c *CPU) bool { return !c.GetFlag(FlagV) }))
	reg(0x70, "BVS", Relative, 2, 2, false, opBranch(func(c *CPU) bool { return c.GetFlag(FlagV) }))
	reg(0x90, "BCC", Relative, 2, 2, false, opBranch(func(c *CPU) bool { return !c.GetFlag(FlagC) }))
	reg(0xB0, "BCS", Relative, 2, 2, false, opBranch(func(c *CPU) bool { return c.GetFlag(FlagC) }))
	reg(0xD0, "BNE", Relative, 2, 2, false, opBranch(func(c *CPU) bool { return !c.GetFlag(FlagZ) }))
	reg(0xF0, "BEQ", Relative, 2, 2, false, opBranch(func(c *CPU) bool { return c.GetFlag(FlagZ) }))

	// Jumps/subroutines
	reg(0x4C, "JMP", Absolute, 3, 3, false, opJMP)
	reg(0x6C, "JMP", Indirect, 3, 5, false, opJMP)
	reg(0x20, "JSR", Absolute, 3, 6, false, opJSR)
	reg(0x60, "RTS", Implicit, 1, 6, false, opRTS)

	// Interrupts
	reg(0x00, "BRK", Implicit, 1, 7, false, opBRK)
	reg(0x40, "RTI", Implicit, 1, 6, false, opRTI)

	// Flag ops
	reg(0x18, "CLC", Implicit, 1, 2, false, opCLC)
	reg(0x38, "SEC", Implicit, 1, 2, false, opSEC)
	reg(0x58, "CLI", Implicit, 1, 2, false, opCLI)
	reg(0x78, "SEI", Implicit, 1, 2, false, opSEI)
	reg(0xD8, "CLD", Implicit, 1, 2, false, opCLD)
	reg(0xF8, "SED", Implicit, 1, 2, false, opSED)
	reg(0xB8, "CLV", Implicit, 1, 2, false, opCLV)

	// No-op
	reg(0xEA, "NOP", Implicit, 1, 2, false, opNOP)
}
