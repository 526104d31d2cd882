// Package cpu implements the MOS 6502 instruction interpreter: decode,
// addressing, the legal instruction set, and program-counter/cycle
// bookkeeping. Bus mappers, ROM loaders, and disassemblers are the host's
// problem; this package only exposes the memory-mapped I/O hooks in the
// mem package for them to attach to.
package cpu

import (
	"sync/atomic"

	"m6502/mem"
)

// CPU holds the full architectural state of one 6502: the three
// general-purpose registers, PC, SP, the packed status byte, and the bus
// it executes against. The zero value is not useful — construct with New.
type CPU struct {
	A, X, Y byte
	PC      uint16
	SP      byte
	P       byte

	Bus *mem.Bus

	halt *HaltReason
	stop atomic.Bool
}

// StepResult reports what one Step call consumed and, if execution
// stopped, why.
type StepResult struct {
	Cycles int
	Halt   *HaltReason
}

// New constructs a CPU with zeroed memory and an undefined register state;
// callers must call Reset (directly or via LoadAndRun) before Run/Step.
func New() *CPU {
	return &CPU{Bus: mem.NewBus()}
}

// Load copies program into memory starting at origin and points the reset
// vector at origin, so a subsequent Reset starts execution there. It
// refuses a program that would not fit in the 64 KiB address space.
func (c *CPU) Load(program []byte, origin uint16) error {
	if !c.Bus.LoadAt(program, origin) {
		return ErrOutOfBoundsProgramLoad
	}
	c.Bus.Write16(0xFFFC, origin)
	return nil
}

// Reset reinitializes PC from the reset vector, sets SP to 0xFD, clears
// A/X/Y, and sets P to interrupt-disable + the always-on bit 5. It also
// clears any halt/stop state, so a halted CPU may be reset and run again.
func (c *CPU) Reset() {
	c.PC = c.Bus.Read16(0xFFFC)
	c.SP = 0xFD
	c.A, c.X, c.Y = 0, 0, 0
	c.P = FlagI | FlagUnused
	c.halt = nil
	c.stop.Store(false)
}

// Stop requests that Run return after the in-flight instruction completes.
// It is the only cross-goroutine signal the core defines; it is checked at
// the top of Step, never mid-instruction.
func (c *CPU) Stop() {
	c.stop.Store(true)
}

// Step executes exactly one instruction: fetch, decode, resolve the
// operand address, advance PC past the instruction, dispatch, and total
// the cycles consumed (including any page-cross or branch-taken bonus).
func (c *CPU) Step() StepResult {
	if c.stop.Load() {
		c.halt = &HaltReason{Kind: HaltStopped}
		return StepResult{Halt: c.halt}
	}

	opcodePC := c.PC
	op := c.Bus.Read(c.PC)
	c.PC++

	desc := opcodeTable[op]
	if desc == nil {
		c.PC = opcodePC
		c.halt = &HaltReason{Kind: HaltIllegalOpcode, Opcode: op, PC: opcodePC}
		return StepResult{Halt: c.halt}
	}

	// BRK halts rather than entering the interrupt sequence when no
	// handler is installed (the IRQ vector reads zero). PC stays at the
	// BRK byte itself, exactly as an IllegalOpcode halt preserves PC at
	// the offending byte.
	if desc.Mnemonic == "BRK" && c.Bus.Read16(0xFFFE) == 0 {
		c.PC = opcodePC
		c.halt = &HaltReason{Kind: HaltBRK}
		return StepResult{Cycles: desc.BaseCycles, Halt: c.halt}
	}

	addr, crossed := c.resolve(desc.Mode)
	// PC must point at the next instruction before the operation body
	// runs: JSR pushes PC-1 off of it, and branches/JMP override it.
	c.PC += uint16(desc.Bytes - 1)

	extra := desc.Exec(c, addr, desc.Mode, crossed)

	cycles := desc.BaseCycles
	if desc.PagePenalty && crossed {
		cycles++
	}
	cycles += extra

	return StepResult{Cycles: cycles, Halt: c.halt}
}

// Run steps until a halt condition: BRK with no installed handler, an
// illegal opcode, or a Stop request. It returns the total cycles consumed
// and the reason execution stopped.
func (c *CPU) Run() (cycles int, halt *HaltReason) {
	for {
		res := c.Step()
		cycles += res.Cycles
		if res.Halt != nil {
			return cycles, res.Halt
		}
	}
}

// LoadAndRun is the convenience Load; Reset; Run sequence. It rejects an
// empty program outright, since there would be nothing meaningful to reset
// the program counter into.
func (c *CPU) LoadAndRun(program []byte, origin uint16) (cycles int, halt *HaltReason, err error) {
	if len(program) == 0 {
		return 0, nil, ErrInvalidConfiguration
	}
	if err := c.Load(program, origin); err != nil {
		return 0, nil, err
	}
	c.Reset()
	cycles, halt = c.Run()
	return cycles, halt, nil
}

// Read is direct bus access, for tests and hosts that want to peek at
// memory without going through the instruction stream.
func (c *CPU) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write is direct bus access, for tests and hosts.
func (c *CPU) Write(addr uint16, v byte) {
	c.Bus.Write(addr, v)
}

// push writes v to the hardware stack at 0x0100|SP and decrements SP,
// wrapping modulo 256 exactly as the hardware does — stack over/underflow
// is not an error condition the core reports.
func (c *CPU) push(v byte) {
	c.Bus.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

// pull increments SP and reads the hardware stack at 0x0100|SP.
func (c *CPU) pull() byte {
	c.SP++
	return c.Bus.Read(0x0100 | uint16(c.SP))
}
