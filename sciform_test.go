package sciform

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sciform/sciform/errs"
	"github.com/sciform/sciform/mode"
)

func TestFormat_Engineering(t *testing.T) {
	res, err := Format(12345.678,
		WithExpMode(mode.Engineering),
		WithSigFigs(4),
	)
	require.NoError(t, err)
	require.Equal(t, "12.35e+03", res.String())
}

func TestFormatter_Reuse(t *testing.T) {
	f, err := NewFormatter(
		WithExpMode(mode.Scientific),
		WithSigFigs(3),
	)
	require.NoError(t, err)

	res, err := f.Format(123.456)
	require.NoError(t, err)
	require.Equal(t, "1.23e+02", res.String())

	res, err = f.Format(0.000999)
	require.NoError(t, err)
	require.Equal(t, "9.99e-04", res.String())
}

func TestFormatSpec(t *testing.T) {
	tests := []struct {
		spec string
		val  float64
		want string
	}{
		{"", 123.456, "123.456"},
		{"!4f", 123.456, "123.5"},
		{".1e", 99.99, "1.0e+02"},
		{"ex+3", 123.456, "0.123456e+03"},
		{"#r", 123.456, "0.123456e+03"},
		{"!3b", 1024, "1.00b+10"},
		{"0=4!3e", 12, "00001.20e+01"},
		{",.s!7f", 123456.654321, "123,456.7"},
		{",.sf", 123456.654321, "123,456.654 321"},
		{"+f", 123.456, "+123.456"},
		{"%", 0.12345, "12.345%"},
	}
	for _, tt := range tests {
		res, err := FormatSpec(tt.val, tt.spec)
		require.NoError(t, err, "spec %q", tt.spec)
		require.Equal(t, tt.want, res.String(), "spec %q", tt.spec)
	}
}

func TestFormatSpec_Invalid(t *testing.T) {
	_, err := FormatSpec(1.0, "bogus spec")
	require.ErrorIs(t, err, errs.ErrInvalidFormatSpec)
}

func TestNewFormatterFromSpec_OptionsOverride(t *testing.T) {
	f, err := NewFormatterFromSpec("!2e", WithSigFigs(5))
	require.NoError(t, err)

	res, err := f.Format(123.456)
	require.NoError(t, err)
	require.Equal(t, "1.2346e+02", res.String())
}

func TestFormatUncertainty(t *testing.T) {
	res, err := FormatUncertainty(12345.678, 3.4,
		WithExpMode(mode.Engineering),
		WithSigFigs(2),
		WithSuperscript(true),
	)
	require.NoError(t, err)
	require.Equal(t, "(12.3457 ± 0.0034)×10³", res.String())
}

func TestFormatSpecUncertainty(t *testing.T) {
	res, err := FormatSpecUncertainty(123.4, 2.3, "()")
	require.NoError(t, err)
	require.Equal(t, "123.4(2.3)", res.String())

	res, err = FormatSpecUncertainty(123.4, 2.3, "!1f")
	require.NoError(t, err)
	require.Equal(t, "123 ± 2", res.String())
}

func TestFormatString(t *testing.T) {
	f, err := NewFormatter()
	require.NoError(t, err)

	res, err := f.FormatString("0.1")
	require.NoError(t, err)
	require.Equal(t, "0.1", res.String())

	res, err = f.FormatString("nan")
	require.NoError(t, err)
	require.Equal(t, "nan", res.String())

	_, err = f.FormatString("twelve")
	require.ErrorIs(t, err, errs.ErrInvalidNumber)
}

func TestFormatDecimal(t *testing.T) {
	f, err := NewFormatter(WithExpMode(mode.Scientific))
	require.NoError(t, err)

	res, err := f.FormatDecimal(decimal.RequireFromString("6.02214076e23"))
	require.NoError(t, err)
	require.Equal(t, "6.02214076e+23", res.String())
}

func TestFormat_NonFinite(t *testing.T) {
	res, err := Format(math.NaN())
	require.NoError(t, err)
	require.Equal(t, "nan", res.String())

	res, err = Format(math.Inf(-1), WithCapitalize(true))
	require.NoError(t, err)
	require.Equal(t, "-INF", res.String())
}

func TestFormat_ValidationErrors(t *testing.T) {
	// Constraint violations surface at format time, after merging.
	_, err := Format(1.0, WithExpMode(mode.Engineering), WithExpVal(4))
	require.ErrorIs(t, err, errs.ErrInvalidExponent)

	// Bad option values surface at construction.
	_, err = NewFormatter(WithSigFigs(0))
	require.ErrorIs(t, err, errs.ErrInvalidNDigits)

	_, err = NewFormatter(WithLeftPadChar('x'))
	require.ErrorIs(t, err, errs.ErrInvalidPadChar)

	// Identical upper and decimal separators are rejected at format time.
	_, err = Format(1.0,
		WithUpperSeparator(mode.SepPoint),
		WithDecimalSeparator(mode.SepPoint),
	)
	require.ErrorIs(t, err, errs.ErrInvalidSeparator)
}

func TestPrefixOptions(t *testing.T) {
	res, err := Format(0.0234,
		WithExpMode(mode.Engineering),
		WithExpFormat(mode.ExpPrefix),
		WithCPrefix(),
		WithExpVal(-2),
	)
	require.ErrorIs(t, err, errs.ErrInvalidExponent) // -2 not a multiple of 3

	res, err = Format(0.0234,
		WithExpMode(mode.Scientific),
		WithExpFormat(mode.ExpPrefix),
		WithCPrefix(),
		WithExpVal(-2),
	)
	require.NoError(t, err)
	require.Equal(t, "2.34 c", res.String())

	res, err = Format(1.3e-3,
		WithExpMode(mode.Engineering),
		WithExpFormat(mode.ExpPrefix),
		WithSuppressedSIPrefix(-3),
	)
	require.NoError(t, err)
	require.Equal(t, "1.3e-03", res.String())

	res, err = Format(0.0042,
		WithExpMode(mode.EngineeringShifted),
		WithExpFormat(mode.ExpPartsPer),
		WithPpthForm(),
	)
	require.NoError(t, err)
	require.Equal(t, "4.2 ppth", res.String())
}

func TestDefaultsRegistry(t *testing.T) {
	t.Cleanup(ResetDefaultOptions)

	require.NoError(t, SetDefaultOptions(
		WithExpMode(mode.Scientific),
		WithSigFigs(4),
	))

	res, err := Format(12345.678)
	require.NoError(t, err)
	require.Equal(t, "1.235e+04", res.String())

	// Formatter options still win over the registry.
	res, err = Format(12345.678, WithSigFigs(2))
	require.NoError(t, err)
	require.Equal(t, "1.2e+04", res.String())

	ResetDefaultOptions()
	res, err = Format(12345.678)
	require.NoError(t, err)
	require.Equal(t, "12345.678", res.String())
}

func TestOverrideDefaultOptions_Restore(t *testing.T) {
	t.Cleanup(ResetDefaultOptions)

	restore, err := OverrideDefaultOptions(WithSigFigs(2))
	require.NoError(t, err)

	res, err := Format(123.456)
	require.NoError(t, err)
	require.Equal(t, "120", res.String())

	restore()
	res, err = Format(123.456)
	require.NoError(t, err)
	require.Equal(t, "123.456", res.String())
}

func TestOverrideDefaultOptions_Nested(t *testing.T) {
	t.Cleanup(ResetDefaultOptions)

	restoreOuter, err := OverrideDefaultOptions(WithExpMode(mode.Scientific))
	require.NoError(t, err)
	restoreInner, err := OverrideDefaultOptions(WithSigFigs(2))
	require.NoError(t, err)

	res, err := Format(123.456)
	require.NoError(t, err)
	require.Equal(t, "1.2e+02", res.String()) // both layers apply

	restoreInner()
	res, err = Format(123.456)
	require.NoError(t, err)
	require.Equal(t, "1.23456e+02", res.String())

	restoreOuter()
	res, err = Format(123.456)
	require.NoError(t, err)
	require.Equal(t, "123.456", res.String())
}
