package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetZN(t *testing.T) {
	c := New()
	c.SetZN(0x00)
	assert.True(t, c.GetFlag(FlagZ))
	assert.False(t, c.GetFlag(FlagN))

	c.SetZN(0x80)
	assert.False(t, c.GetFlag(FlagZ))
	assert.True(t, c.GetFlag(FlagN))

	c.SetZN(0x10)
	assert.False(t, c.GetFlag(FlagZ))
	assert.False(t, c.GetFlag(FlagN))
}

func TestSetFlagGetFlagRoundTrip(t *testing.T) {
	c := New()
	c.SetFlag(FlagC, true)
	assert.True(t, c.GetFlag(FlagC))
	c.SetFlag(FlagC, false)
	assert.False(t, c.GetFlag(FlagC))
}

func TestStatusStringReflectsPackedByte(t *testing.T) {
	c := New()
	c.P = FlagN | FlagC
	s := c.StatusString()
	assert.Equal(t, "Nv-bdizC", s)
}
