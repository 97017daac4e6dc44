package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsZero(t *testing.T) {
	var n Numeral
	assert.True(t, n.IsZero())
	assert.True(t, n.IsNonneg())
	assert.False(t, n.IsPos())
	assert.Equal(t, "0", n.String())
	assert.True(t, n.Equal(Zero()))
}

func TestArithmetic(t *testing.T) {
	a := FromInt(2)
	b := FromFrac(3, 2)

	assert.Equal(t, "7/2", a.Add(b).String())
	assert.Equal(t, "1/2", a.Sub(b).String())
	assert.Equal(t, "3", a.Mul(b).String())
	assert.Equal(t, "-2", a.Neg().String())
	assert.Equal(t, "2", a.Neg().Abs().String())
}

func TestOperandsAreImmutable(t *testing.T) {
	a := FromInt(1)
	b := FromInt(2)
	_ = a.Add(b)
	_ = b.Neg()
	assert.Equal(t, "1", a.String())
	assert.Equal(t, "2", b.String())
}

func TestComparisons(t *testing.T) {
	assert.Equal(t, -1, FromInt(1).Cmp(FromInt(2)))
	assert.Equal(t, 0, FromFrac(2, 4).Cmp(FromFrac(1, 2)))
	assert.Equal(t, 1, FromInt(0).Cmp(FromInt(-3)))
	assert.True(t, FromInt(1).Less(FromFrac(3, 2)))
	assert.False(t, FromFrac(3, 2).Less(FromFrac(3, 2)))
}

func TestSigns(t *testing.T) {
	assert.True(t, FromInt(3).IsPos())
	assert.True(t, FromInt(-3).IsNeg())
	assert.True(t, FromInt(-3).Abs().IsPos())
	assert.True(t, FromInt(1).IsOne())
	assert.True(t, FromInt(-1).IsMinusOne())
	assert.False(t, FromFrac(1, 2).IsOne())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"3/2", "3/2"},
		{"-6/4", "-3/2"},
		{"0", "0"},
	}
	for _, tt := range tests {
		n, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, n.String())
	}

	_, err := Parse("not-a-number")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParse("x") })
}

func TestKeyIsCanonical(t *testing.T) {
	assert.Equal(t, FromFrac(1, 2).Key(), FromFrac(2, 4).Key())
	assert.NotEqual(t, FromInt(1).Key(), FromInt(2).Key())
	assert.Equal(t, "0", Zero().Key())
}

func TestFromFracPanicsOnZeroDenominator(t *testing.T) {
	assert.Panics(t, func() { FromFrac(1, 0) })
}
