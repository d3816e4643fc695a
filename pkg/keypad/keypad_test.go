package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPressDigit_ReplacesLeadingZero(t *testing.T) {
	e, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "0", e.Value())

	require.NoError(t, e.PressDigit('5'))
	assert.Equal(t, "5", e.Value())

	require.NoError(t, e.PressDigit('2'))
	assert.Equal(t, "52", e.Value())
}

func TestPressDecimal_SecondPressLeavesValueUnchanged(t *testing.T) {
	e, err := New("12")
	require.NoError(t, err)

	require.NoError(t, e.PressDecimal())
	require.NoError(t, e.PressDigit('5'))
	assert.Equal(t, "12.5", e.Value())

	assert.ErrorIs(t, e.PressDecimal(), ErrDecimalExists)
	assert.Equal(t, "12.5", e.Value())
}

func TestPressDelete_NeverEmptiesBelowZero(t *testing.T) {
	e, err := New("1.5")
	require.NoError(t, err)

	e.PressDelete()
	assert.Equal(t, "1.", e.Value())
	e.PressDelete()
	assert.Equal(t, "1", e.Value())
	e.PressDelete()
	assert.Equal(t, "0", e.Value())
	e.PressDelete()
	assert.Equal(t, "0", e.Value())
}

func TestPressDigit_AfterDecimal(t *testing.T) {
	e, err := New("0")
	require.NoError(t, err)
	require.NoError(t, e.PressDecimal())
	require.NoError(t, e.PressDigit('7'))
	assert.Equal(t, "0.7", e.Value())
}

func TestPressDigit_RejectsNonDigitAndOverflow(t *testing.T) {
	e, err := New("")
	require.NoError(t, err)
	assert.ErrorIs(t, e.PressDigit('x'), ErrNotDigit)

	for i := 0; i < maxDigits; i++ {
		require.NoError(t, e.PressDigit('9'))
	}
	assert.ErrorIs(t, e.PressDigit('9'), ErrTooLong)
}

func TestNew_ParsesAndNormalizes(t *testing.T) {
	e, err := New("007.25")
	require.NoError(t, err)
	assert.Equal(t, "7.25", e.Value())

	_, err = New("1.2.3")
	assert.ErrorIs(t, err, ErrBadInitial)
	_, err = New("12a")
	assert.ErrorIs(t, err, ErrBadInitial)
}
