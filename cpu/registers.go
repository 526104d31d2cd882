package cpu

import "m6502/mask"

// Status flag bit masks, in the canonical 6502 layout N V _ B D I Z C
// (most significant bit first). Bit 5 is unused and always reads as 1;
// bit 4 (B) exists only in copies of P pushed to the stack, never as
// persisted CPU state.
const (
	FlagC byte = 1 << 0 // carry
	FlagZ byte = 1 << 1 // zero
	FlagI byte = 1 << 2 // interrupt disable
	FlagD byte = 1 << 3 // decimal (tracked, never consulted by ADC/SBC)
	FlagB byte = 1 << 4 // break, pushed-copy only
	FlagUnused byte = 1 << 5
	FlagV byte = 1 << 6 // overflow
	FlagN byte = 1 << 7 // negative
)

// GetFlag reports whether every bit in mask is set in P.
func (c *CPU) GetFlag(mask byte) bool {
	return c.P&mask == mask
}

// SetFlag sets or clears the bits in mask within P.
func (c *CPU) SetFlag(mask byte, v bool) {
	if v {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// SetZN sets Z iff v == 0 and N to bit 7 of v. Every arithmetic and logic
// operation except BIT funnels its result through this; ADC/SBC/CMP and
// the shifts also set C (and ADC/SBC, V) by their own explicit rules, and
// BIT sets Z from A&M and N/V from the operand.
func (c *CPU) SetZN(v byte) {
	c.SetFlag(FlagZ, v == 0)
	c.SetFlag(FlagN, v&0x80 != 0)
}

// statusLabels pairs each status bit with its canonical symbol and its
// 1-indexed position (MSB first) in the mask package's bit-range
// conventions: N is bit 7 (mask.I1), C is bit 0 (mask.I8).
var statusLabels = [8]struct {
	sym byte
	idx mask.ByteIndex
}{
	{'N', mask.I1},
	{'V', mask.I2},
	{'-', mask.I3},
	{'B', mask.I4},
	{'D', mask.I5},
	{'I', mask.I6},
	{'Z', mask.I7},
	{'C', mask.I8},
}

// StatusString renders P as "NV-BDIZC", with a bit shown uppercase when
// set and lowercase when clear, using the mask package's bit-range reader
// rather than a second bit-order table.
func (c *CPU) StatusString() string {
	buf := make([]byte, len(statusLabels))
	for i, l := range statusLabels {
		if l.sym == '-' {
			buf[i] = '-'
		} else if mask.IsSet(c.P, l.idx) {
			buf[i] = l.sym
		} else {
			buf[i] = l.sym + ('a' - 'A')
		}
	}
	return string(buf)
}
