package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newResolverCPU() *CPU {
	c := New()
	c.PC = 0x0200
	return c
}

func TestResolveZeroPageXWrapsWithinPageZero(t *testing.T) {
	c := newResolverCPU()
	c.Bus.Write(c.PC, 0xFF)
	c.X = 1
	addr, crossed := c.resolve(ZeroPageX)
	assert.Equal(t, uint16(0x00), addr)
	assert.False(t, crossed)
}

func TestResolveAbsoluteXPageCross(t *testing.T) {
	c := newResolverCPU()
	c.Bus.Write16(c.PC, 0x00FF)
	c.X = 1
	addr, crossed := c.resolve(AbsoluteX)
	assert.Equal(t, uint16(0x0100), addr)
	assert.True(t, crossed)
}

func TestResolveAbsoluteXNoPageCross(t *testing.T) {
	c := newResolverCPU()
	c.Bus.Write16(c.PC, 0x0010)
	c.X = 1
	addr, crossed := c.resolve(AbsoluteX)
	assert.Equal(t, uint16(0x0011), addr)
	assert.False(t, crossed)
}

func TestResolveIndirectXWrapsPointerWithinZeroPage(t *testing.T) {
	c := newResolverCPU()
	c.Bus.Write(c.PC, 0xFE)
	c.X = 3 // 0xFE + 3 = 0x101, truncated to 0x01
	c.Bus.Write(0x01, 0x34)
	c.Bus.Write(0x02, 0x12)
	addr, crossed := c.resolve(IndirectX)
	assert.Equal(t, uint16(0x1234), addr)
	assert.False(t, crossed)
}

func TestResolveIndirectYPageCross(t *testing.T) {
	c := newResolverCPU()
	c.Bus.Write(c.PC, 0x10)
	c.Bus.Write(0x10, 0xFF)
	c.Bus.Write(0x11, 0x02)
	c.Y = 1
	addr, crossed := c.resolve(IndirectY)
	assert.Equal(t, uint16(0x0300), addr)
	assert.True(t, crossed)
}

func TestResolveIndirectYPointerWrapsWithinZeroPage(t *testing.T) {
	c := newResolverCPU()
	c.Bus.Write(c.PC, 0xFF)
	c.Bus.Write(0xFF, 0x00)
	c.Bus.Write(0x00, 0x20) // pointer's high byte wraps to 0x00, not 0x100
	c.Y = 0
	addr, crossed := c.resolve(IndirectY)
	assert.Equal(t, uint16(0x2000), addr)
	assert.False(t, crossed)
}

func TestResolveRelativeForwardAndBackward(t *testing.T) {
	c := newResolverCPU()
	c.Bus.Write(c.PC, 0x05)
	addr, _ := c.resolve(Relative)
	assert.Equal(t, c.PC+1+5, addr)

	c.Bus.Write(c.PC, 0xFE) // -2
	addr, _ = c.resolve(Relative)
	assert.Equal(t, c.PC-1, addr)
}

func TestResolveIndirectAppliesJMPPageWrapBug(t *testing.T) {
	c := New()
	c.PC = 0x0000 // where the pointer itself (0x02FF) is stored, away from the bug's target bytes
	c.Bus.Write16(c.PC, 0x02FF)
	c.Bus.Write(0x02FF, 0x11)
	c.Bus.Write(0x0200, 0x22)
	c.Bus.Write(0x0300, 0x33)
	addr, _ := c.resolve(Indirect)
	assert.Equal(t, uint16(0x2211), addr)
}

func TestResolveImmediateIsPC(t *testing.T) {
	c := newResolverCPU()
	addr, crossed := c.resolve(Immediate)
	assert.Equal(t, c.PC, addr)
	assert.False(t, crossed)
}
