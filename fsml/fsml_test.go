package fsml

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sciform/sciform/errs"
	"github.com/sciform/sciform/mode"
)

func TestParse_Empty(t *testing.T) {
	spec, err := Parse("")
	require.NoError(t, err)
	require.Equal(t, &Spec{}, spec)
}

func TestParse_RoundingAndExpMode(t *testing.T) {
	spec, err := Parse("!4f")
	require.NoError(t, err)
	require.Equal(t, mode.SigFig, *spec.RoundMode)
	require.Equal(t, 4, *spec.NDigits)
	require.Equal(t, mode.FixedPoint, *spec.ExpMode)
	require.False(t, *spec.Capitalize)

	spec, err = Parse(".1e")
	require.NoError(t, err)
	require.Equal(t, mode.DecPlace, *spec.RoundMode)
	require.Equal(t, 1, *spec.NDigits)
	require.Equal(t, mode.Scientific, *spec.ExpMode)

	spec, err = Parse("!2E")
	require.NoError(t, err)
	require.Equal(t, mode.Scientific, *spec.ExpMode)
	require.True(t, *spec.Capitalize)

	// Signed and negative digit counts parse; range checks happen at
	// option validation.
	spec, err = Parse(".+3f")
	require.NoError(t, err)
	require.Equal(t, 3, *spec.NDigits)

	spec, err = Parse(".-2f")
	require.NoError(t, err)
	require.Equal(t, -2, *spec.NDigits)
}

func TestParse_AlternateModes(t *testing.T) {
	spec, err := Parse("r")
	require.NoError(t, err)
	require.Equal(t, mode.Engineering, *spec.ExpMode)

	spec, err = Parse("#r")
	require.NoError(t, err)
	require.Equal(t, mode.EngineeringShifted, *spec.ExpMode)

	spec, err = Parse("b")
	require.NoError(t, err)
	require.Equal(t, mode.Binary, *spec.ExpMode)

	spec, err = Parse("#b")
	require.NoError(t, err)
	require.Equal(t, mode.BinaryIEC, *spec.ExpMode)

	spec, err = Parse("%")
	require.NoError(t, err)
	require.Equal(t, mode.Percent, *spec.ExpMode)
	require.False(t, *spec.Capitalize)
}

func TestParse_FillSignAndPad(t *testing.T) {
	spec, err := Parse("0=4!3e")
	require.NoError(t, err)
	require.Equal(t, byte('0'), *spec.FillChar)
	require.Equal(t, 4, *spec.LeftPadDecPlace)
	require.True(t, *spec.LeftPadMatching)
	require.Equal(t, mode.SigFig, *spec.RoundMode)
	require.Equal(t, 3, *spec.NDigits)

	spec, err = Parse(" =2f")
	require.NoError(t, err)
	require.Equal(t, byte(' '), *spec.FillChar)
	require.Equal(t, 2, *spec.LeftPadDecPlace)

	spec, err = Parse("+f")
	require.NoError(t, err)
	require.Equal(t, mode.SignAlways, *spec.SignMode)

	spec, err = Parse("-f")
	require.NoError(t, err)
	require.Equal(t, mode.SignNegative, *spec.SignMode)

	spec, err = Parse(" f")
	require.NoError(t, err)
	require.Equal(t, mode.SignSpace, *spec.SignMode)
	require.Nil(t, spec.FillChar)
}

func TestParse_Separators(t *testing.T) {
	spec, err := Parse(",.sf")
	require.NoError(t, err)
	require.Equal(t, mode.SepComma, *spec.UpperSep)
	require.Equal(t, mode.SepPoint, *spec.DecimalSep)
	require.Equal(t, mode.SepSpace, *spec.LowerSep)

	// 'n' means no separator at that position.
	spec, err = Parse("n,nf")
	require.NoError(t, err)
	require.Equal(t, mode.SepNone, *spec.UpperSep)
	require.Equal(t, mode.SepComma, *spec.DecimalSep)
	require.Equal(t, mode.SepNone, *spec.LowerSep)

	spec, err = Parse("_._f")
	require.NoError(t, err)
	require.Equal(t, mode.SepUnderscore, *spec.UpperSep)
	require.Equal(t, mode.SepPoint, *spec.DecimalSep)
	require.Equal(t, mode.SepUnderscore, *spec.LowerSep)
}

func TestParse_SeparatorRoundAmbiguity(t *testing.T) {
	// A '.' followed by a digit starts the rounding group.
	spec, err := Parse(".3f")
	require.NoError(t, err)
	require.Nil(t, spec.UpperSep)
	require.Nil(t, spec.DecimalSep)
	require.Equal(t, mode.DecPlace, *spec.RoundMode)
	require.Equal(t, 3, *spec.NDigits)

	// A '.' not followed by a digit is a separator.
	spec, err = Parse(".f")
	require.NoError(t, err)
	require.Equal(t, mode.SepPoint, *spec.UpperSep)
	require.Nil(t, spec.RoundMode)

	// Upper separator, then a rounding group in the decimal slot.
	spec, err = Parse(",.2f")
	require.NoError(t, err)
	require.Equal(t, mode.SepComma, *spec.UpperSep)
	require.Nil(t, spec.DecimalSep)
	require.Equal(t, mode.DecPlace, *spec.RoundMode)
	require.Equal(t, 2, *spec.NDigits)

	// Both a decimal separator and a rounding group.
	spec, err = Parse("n..2f")
	require.NoError(t, err)
	require.Equal(t, mode.SepNone, *spec.UpperSep)
	require.Equal(t, mode.SepPoint, *spec.DecimalSep)
	require.Equal(t, mode.DecPlace, *spec.RoundMode)
	require.Equal(t, 2, *spec.NDigits)
}

func TestParse_ExpValPrefixParen(t *testing.T) {
	spec, err := Parse("ex+3")
	require.NoError(t, err)
	require.Equal(t, mode.Scientific, *spec.ExpMode)
	require.Equal(t, 3, *spec.ExpVal)

	spec, err = Parse("rx-6p")
	require.NoError(t, err)
	require.Equal(t, mode.Engineering, *spec.ExpMode)
	require.Equal(t, -6, *spec.ExpVal)
	require.Equal(t, mode.ExpPrefix, *spec.ExpFormat)

	spec, err = Parse("()")
	require.NoError(t, err)
	require.True(t, *spec.ParenUncertainty)

	spec, err = Parse("!2f()")
	require.NoError(t, err)
	require.True(t, *spec.ParenUncertainty)
}

func TestParse_FullSpec(t *testing.T) {
	spec, err := Parse("0=+#4,.s!3rx+6p()")
	require.NoError(t, err)
	require.Equal(t, byte('0'), *spec.FillChar)
	require.Equal(t, mode.SignAlways, *spec.SignMode)
	require.Equal(t, 4, *spec.LeftPadDecPlace)
	require.Equal(t, mode.SepComma, *spec.UpperSep)
	require.Equal(t, mode.SepPoint, *spec.DecimalSep)
	require.Equal(t, mode.SepSpace, *spec.LowerSep)
	require.Equal(t, mode.SigFig, *spec.RoundMode)
	require.Equal(t, 3, *spec.NDigits)
	require.Equal(t, mode.EngineeringShifted, *spec.ExpMode)
	require.Equal(t, 6, *spec.ExpVal)
	require.Equal(t, mode.ExpPrefix, *spec.ExpFormat)
	require.True(t, *spec.ParenUncertainty)
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{
		"q",    // unknown character
		"x",    // exponent value marker without digits
		"(",    // unterminated parens
		"3x",   // exponent value after pad digits but no mode is fine; bare x is not
		"!f",   // rounding marker without digits
		"f3",   // trailing digits
		"ff",   // duplicate exponent mode
		"e+3",  // exponent value requires the x marker
		"=2f",  // fill char missing before '='
		"!2f)", // stray close paren
	} {
		_, err := Parse(s)
		require.ErrorIs(t, err, errs.ErrInvalidFormatSpec, "spec %q", s)
	}
}
