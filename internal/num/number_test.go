package num

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFromFloat64_ExactDecimalConversion(t *testing.T) {
	// 0.1 must enter as the shortest decimal, not the binary expansion.
	n := FromFloat64(0.1)
	require.Equal(t, "0.1", n.String())

	n = FromFloat64(123.456)
	require.Equal(t, "123.456", n.String())
}

func TestFromFloat64_NonFinite(t *testing.T) {
	require.True(t, FromFloat64(math.NaN()).IsNaN())
	require.True(t, FromFloat64(math.Inf(1)).IsInf())
	require.Equal(t, 1, FromFloat64(math.Inf(1)).Sign())
	require.Equal(t, -1, FromFloat64(math.Inf(-1)).Sign())
}

func TestFromString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123.456", "123.456"},
		{"-0.001", "-0.001"},
		{"nan", "nan"},
		{"NaN", "nan"},
		{"inf", "inf"},
		{"+Infinity", "inf"},
		{"-inf", "-inf"},
	}
	for _, tt := range tests {
		n, err := FromString(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.want, n.String(), "input %q", tt.input)
	}

	_, err := FromString("not a number")
	require.Error(t, err)
}

func TestTopDigit(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1000", 3},
		{"999.9", 2},
		{"1", 0},
		{"0.0999", -2},
		{"0.1", -1},
		{"0", 0},
		{"-123.45", 2},
	}
	for _, tt := range tests {
		n, err := FromString(tt.input)
		require.NoError(t, err)
		require.Equal(t, tt.want, n.TopDigit(), "input %q", tt.input)
	}

	require.Equal(t, 0, NaN().TopDigit())
	require.Equal(t, 0, Inf(1).TopDigit())
}

func TestBottomDigit(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"123.456", -3},
		{"123", 0},
		{"0.1", -1},
	}
	for _, tt := range tests {
		n, err := FromString(tt.input)
		require.NoError(t, err)
		require.Equal(t, tt.want, n.BottomDigit(), "input %q", tt.input)
	}
}

func TestTopDigitBinary(t *testing.T) {
	tests := []struct {
		input float64
		want  int
	}{
		{1, 0},
		{2, 1},
		{1023, 9},
		{1024, 10},
		{1025, 10},
		{0.5, -1},
		{0.49, -2},
		{1 << 20, 20},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FromFloat64(tt.input).TopDigitBinary(), "input %v", tt.input)
	}
}

func TestNormalize(t *testing.T) {
	n, err := FromString("1.200")
	require.NoError(t, err)
	require.Equal(t, -1, n.Normalize().BottomDigit()) // 1.2 stored as 12e-1

	n, err = FromString("100")
	require.NoError(t, err)
	require.Equal(t, 2, n.Normalize().BottomDigit())

	n, err = FromString("0.00")
	require.NoError(t, err)
	require.Equal(t, 0, n.Normalize().BottomDigit())
}

func TestRoundToPlace_HalfEven(t *testing.T) {
	tests := []struct {
		input string
		place int
		want  string
	}{
		{"0.5", 0, "0"},   // ties to even
		{"1.5", 0, "2"},
		{"2.5", 0, "2"},
		{"0.25", -1, "0.2"},
		{"0.35", -1, "0.4"},
		{"99.99", 0, "100"},
		{"-1.5", 0, "-2"},
		{"123.456", -2, "123.46"},
		{"123.456", 2, "100"},
	}
	for _, tt := range tests {
		n, err := FromString(tt.input)
		require.NoError(t, err)
		got := n.RoundToPlace(tt.place)
		require.Equal(t, tt.want, got.String(), "round %q to place %d", tt.input, tt.place)
	}
}

func TestRoundToPlace_NoNegativeZero(t *testing.T) {
	n, err := FromString("-0.4")
	require.NoError(t, err)
	require.Equal(t, "0", n.RoundToPlace(0).String())
}

func TestMulPow2_Exact(t *testing.T) {
	n := FromFloat64(1)
	require.Equal(t, "0.5", n.MulPow2(-1).String())
	require.Equal(t, "0.0625", n.MulPow2(-4).String())
	require.Equal(t, "1024", n.MulPow2(10).String())

	// 1536 * 2^-10 must come out exact, not truncated.
	require.Equal(t, "1.5", FromFloat64(1536).MulPow2(-10).String())
}

func TestShiftPow10(t *testing.T) {
	n := FromFloat64(123.456)
	require.Equal(t, "123456", n.ShiftPow10(3).String())
	require.Equal(t, "0.123456", n.ShiftPow10(-3).String())
}

func TestFixedString(t *testing.T) {
	n := FromFloat64(12.3)
	require.Equal(t, "12.300", n.FixedString(3))
	require.Equal(t, "12", n.FixedString(0))
}

func TestFromDecimal(t *testing.T) {
	d := decimal.RequireFromString("42.5")
	n := FromDecimal(d)
	require.True(t, n.IsFinite())
	require.Equal(t, "42.5", n.String())
}
