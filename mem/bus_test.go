package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	b := NewBus()
	b.Write(0x1234, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0x1234))
}

func TestRead16LittleEndian(t *testing.T) {
	b := NewBus()
	b.Write(0x10, 0xCD)
	b.Write(0x11, 0xAB)
	assert.Equal(t, uint16(0xABCD), b.Read16(0x10))
}

func TestWrite16LittleEndian(t *testing.T) {
	b := NewBus()
	b.Write16(0x10, 0xABCD)
	assert.Equal(t, uint8(0xCD), b.Read(0x10))
	assert.Equal(t, uint8(0xAB), b.Read(0x11))
}

func TestRead16BugPageWrap(t *testing.T) {
	b := NewBus()
	// pointer straddles a page boundary at $xxFF: the real bug re-reads
	// the low byte of the same page instead of crossing into the next.
	b.Write(0x02FF, 0x11)
	b.Write(0x0200, 0x22) // read by the bug: start of the same page
	b.Write(0x0300, 0x33) // would be read by a naive addr+1; must NOT be read

	assert.Equal(t, uint16(0x2211), b.Read16Bug(0x02FF))
}

func TestRead16BugNoWrapWhenNotAtPageEdge(t *testing.T) {
	b := NewBus()
	b.Write(0x02FE, 0x11)
	b.Write(0x02FF, 0x22)
	assert.Equal(t, uint16(0x2211), b.Read16Bug(0x02FE))
}

func TestLoadAtFitsAndOverflows(t *testing.T) {
	b := NewBus()
	assert.True(t, b.LoadAt([]byte{1, 2, 3}, 0xFFFD))
	assert.Equal(t, uint8(1), b.Read(0xFFFD))
	assert.Equal(t, uint8(2), b.Read(0xFFFE))
	assert.Equal(t, uint8(3), b.Read(0xFFFF))

	assert.False(t, b.LoadAt([]byte{1, 2, 3}, 0xFFFE))
}

func TestReadHookTakesPriorityOverRAM(t *testing.T) {
	b := NewBus()
	b.Write(0x4016, 0x99)
	var seen uint16
	b.RegisterReadHook(0x4016, 0x4017, func(addr uint16) uint8 {
		seen = addr
		return 0x7F
	})
	assert.Equal(t, uint8(0x7F), b.Read(0x4016))
	assert.Equal(t, uint16(0x4016), seen)
	// outside the hooked range, raw RAM still answers
	assert.Equal(t, uint8(0), b.Read(0x4018))
}

func TestWriteHookTakesPriorityOverRAM(t *testing.T) {
	b := NewBus()
	var got uint8
	b.RegisterWriteHook(0x2000, 0x2007, func(addr uint16, v uint8) {
		got = v
	})
	b.Write(0x2000, 0x55)
	assert.Equal(t, uint8(0x55), got)
	// the hook owns the write; raw RAM is untouched
	assert.Equal(t, uint8(0), b.Read(0x2000))
}
