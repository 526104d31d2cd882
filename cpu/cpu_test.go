package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLDAImmediateHaltsAtBRK(t *testing.T) {
	c := New()
	_, halt, err := c.LoadAndRun([]byte{0xA9, 0x05, 0x00}, 0x8000)
	require.NoError(t, err)
	require.NotNil(t, halt)
	assert.Equal(t, HaltBRK, halt.Kind)
	assert.Equal(t, byte(0x05), c.A)
	assert.False(t, c.GetFlag(FlagZ))
	assert.False(t, c.GetFlag(FlagN))
}

func TestFiveOpChain(t *testing.T) {
	c := New()
	_, _, err := c.LoadAndRun([]byte{0xA9, 0xC0, 0xAA, 0xE8, 0x00}, 0x8000)
	require.NoError(t, err)
	assert.Equal(t, byte(0xC0), c.A)
	assert.Equal(t, byte(0xC1), c.X)
	assert.True(t, c.GetFlag(FlagN))
}

func TestINXOverflow(t *testing.T) {
	c := New()
	require.NoError(t, c.Load([]byte{0xE8, 0x00}, 0x8000))
	c.Reset()
	c.X = 0xFF
	_, _ = c.Run()
	assert.Equal(t, byte(0x00), c.X)
	assert.True(t, c.GetFlag(FlagZ))
	assert.False(t, c.GetFlag(FlagN))
}

func TestADCCarry(t *testing.T) {
	c := New()
	require.NoError(t, c.Load([]byte{0x69, 0x50, 0x00}, 0x8000))
	c.Reset()
	c.A = 0xD0
	c.SetFlag(FlagC, false)
	_, _ = c.Run()
	assert.Equal(t, byte(0x20), c.A)
	assert.True(t, c.GetFlag(FlagC))
	// The canonical overflow formula in this package (V = (A^result) &
	// (M^result) & 0x80) agrees with real 6502 hardware: 0xD0 (negative)
	// plus 0x50 (positive) can never overflow, since overflow requires
	// same-signed operands. V is clear here.
	assert.False(t, c.GetFlag(FlagV))
}

func TestADCNoOverflow(t *testing.T) {
	c := New()
	require.NoError(t, c.Load([]byte{0x69, 10, 0x00}, 0x8000))
	c.Reset()
	c.A = 80
	c.SetFlag(FlagC, false)
	_, _ = c.Run()
	assert.Equal(t, byte(90), c.A)
	assert.False(t, c.GetFlag(FlagC))
	assert.False(t, c.GetFlag(FlagV))
}

func TestADCOverflowSameSignOperands(t *testing.T) {
	c := New()
	require.NoError(t, c.Load([]byte{0x69, 0x50, 0x00}, 0x8000))
	c.Reset()
	c.A = 0x50 // +80 + +80 = 160, which wraps into negative: genuine overflow
	c.SetFlag(FlagC, false)
	_, _ = c.Run()
	assert.Equal(t, byte(0xA0), c.A)
	assert.False(t, c.GetFlag(FlagC))
	assert.True(t, c.GetFlag(FlagV))
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c := New()
	program := []byte{0x20, 0x06, 0x80, 0x00, 0x00, 0x00, 0x60}
	require.NoError(t, c.Load(program, 0x8000))
	c.Reset()
	spBefore := c.SP

	_, halt := c.Run()
	require.NotNil(t, halt)
	assert.Equal(t, HaltBRK, halt.Kind)
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, spBefore, c.SP)
}

func TestLoadRejectsOutOfBoundsProgram(t *testing.T) {
	c := New()
	err := c.Load(make([]byte, 16), 0xFFFA)
	assert.ErrorIs(t, err, ErrOutOfBoundsProgramLoad)
}

func TestLoadAndRunRejectsEmptyProgram(t *testing.T) {
	c := New()
	_, _, err := c.LoadAndRun(nil, 0x8000)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestIllegalOpcodeHalts(t *testing.T) {
	c := New()
	require.NoError(t, c.Load([]byte{0x02}, 0x8000)) // 0x02 has no legal descriptor
	c.Reset()

	_, halt := c.Run()
	require.NotNil(t, halt)
	assert.Equal(t, HaltIllegalOpcode, halt.Kind)
	assert.Equal(t, byte(0x02), halt.Opcode)
	assert.Equal(t, uint16(0x8000), halt.PC)

	var ioErr *IllegalOpcodeError
	require.True(t, errors.As(halt.Err(), &ioErr))
	assert.Equal(t, uint16(0x8000), ioErr.PC)
}

func TestStopEndsRunBetweenInstructions(t *testing.T) {
	c := New()
	// an infinite loop: JMP back to itself
	require.NoError(t, c.Load([]byte{0x4C, 0x00, 0x80}, 0x8000))
	c.Reset()
	c.Stop()

	_, halt := c.Run()
	require.NotNil(t, halt)
	assert.Equal(t, HaltStopped, halt.Kind)
}

func TestBRKWithHandlerDoesNotHalt(t *testing.T) {
	c := New()
	require.NoError(t, c.Load([]byte{0x00}, 0x8000))
	c.Reset()
	c.Bus.Write16(0xFFFE, 0x9000) // install a handler address

	res := c.Step()
	assert.Nil(t, res.Halt)
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.GetFlag(FlagI))
}

func TestResetRestoresStatusAndZeroesRegisters(t *testing.T) {
	c := New()
	require.NoError(t, c.Load([]byte{0xEA}, 0x8000))
	c.A, c.X, c.Y = 1, 2, 3
	c.Reset()
	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.Equal(t, FlagI|FlagUnused, c.P)
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestPushPullStackRoundTrip(t *testing.T) {
	c := New()
	c.SP = 0xFD
	c.push(0x42)
	assert.Equal(t, byte(0xFC), c.SP)
	assert.Equal(t, byte(0x42), c.pull())
	assert.Equal(t, byte(0xFD), c.SP)
}
