package sciform

import (
	"fmt"

	"github.com/sciform/sciform/errs"
	"github.com/sciform/sciform/fsml"
	"github.com/sciform/sciform/internal/options"
	"github.com/sciform/sciform/mode"
	"github.com/sciform/sciform/prefix"
	"github.com/sciform/sciform/render"
)

// config is a partially populated option set. Nil fields fall through to
// the process defaults and then to the factory defaults when resolved.
type config struct {
	expMode   *mode.ExpMode
	expVal    *int
	roundMode *mode.RoundMode
	ndigits   *int

	upperSep   *mode.Separator
	decimalSep *mode.Separator
	lowerSep   *mode.Separator

	signMode        *mode.SignMode
	leftPadChar     *byte
	leftPadDecPlace *int

	expFormat          *mode.ExpFormat
	extraSIPrefixes    prefix.Overrides
	extraIECPrefixes   prefix.Overrides
	extraPartsPerForms prefix.Overrides

	capitalize  *bool
	superscript *bool
	latex       *bool
	nanInfExp   *bool

	parenUncertainty           *bool
	pdgSigFigs                 *bool
	leftPadMatching            *bool
	parenUncertaintySeparators *bool
	pmWhitespace               *bool
}

// Option configures a Formatter or the process-wide defaults.
type Option = options.Option[*config]

func (c *config) clone() *config {
	dup := *c
	dup.extraSIPrefixes = c.extraSIPrefixes.Clone()
	dup.extraIECPrefixes = c.extraIECPrefixes.Clone()
	dup.extraPartsPerForms = c.extraPartsPerForms.Clone()

	return &dup
}

// overlay writes every populated field of c onto o.
func (c *config) overlay(o *render.Options) {
	setIf(&o.ExpMode, c.expMode)
	setIf(&o.ExpVal, c.expVal)
	setIf(&o.RoundMode, c.roundMode)
	setIf(&o.NDigits, c.ndigits)
	setIf(&o.UpperSep, c.upperSep)
	setIf(&o.DecimalSep, c.decimalSep)
	setIf(&o.LowerSep, c.lowerSep)
	setIf(&o.SignMode, c.signMode)
	setIf(&o.LeftPadChar, c.leftPadChar)
	setIf(&o.LeftPadDecPlace, c.leftPadDecPlace)
	setIf(&o.ExpFormat, c.expFormat)
	setIf(&o.Capitalize, c.capitalize)
	setIf(&o.Superscript, c.superscript)
	setIf(&o.Latex, c.latex)
	setIf(&o.NaNInfExp, c.nanInfExp)
	setIf(&o.ParenUncertainty, c.parenUncertainty)
	setIf(&o.PDGSigFigs, c.pdgSigFigs)
	setIf(&o.LeftPadMatching, c.leftPadMatching)
	setIf(&o.ParenUncertaintySeparators, c.parenUncertaintySeparators)
	setIf(&o.PMWhitespace, c.pmWhitespace)

	o.ExtraSIPrefixes = o.ExtraSIPrefixes.Merge(c.extraSIPrefixes)
	o.ExtraIECPrefixes = o.ExtraIECPrefixes.Merge(c.extraIECPrefixes)
	o.ExtraPartsPerForms = o.ExtraPartsPerForms.Merge(c.extraPartsPerForms)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// merge copies every populated field of other onto c.
func (c *config) merge(other *config) {
	mergeIf(&c.expMode, other.expMode)
	mergeIf(&c.expVal, other.expVal)
	mergeIf(&c.roundMode, other.roundMode)
	mergeIf(&c.ndigits, other.ndigits)
	mergeIf(&c.upperSep, other.upperSep)
	mergeIf(&c.decimalSep, other.decimalSep)
	mergeIf(&c.lowerSep, other.lowerSep)
	mergeIf(&c.signMode, other.signMode)
	mergeIf(&c.leftPadChar, other.leftPadChar)
	mergeIf(&c.leftPadDecPlace, other.leftPadDecPlace)
	mergeIf(&c.expFormat, other.expFormat)
	mergeIf(&c.capitalize, other.capitalize)
	mergeIf(&c.superscript, other.superscript)
	mergeIf(&c.latex, other.latex)
	mergeIf(&c.nanInfExp, other.nanInfExp)
	mergeIf(&c.parenUncertainty, other.parenUncertainty)
	mergeIf(&c.pdgSigFigs, other.pdgSigFigs)
	mergeIf(&c.leftPadMatching, other.leftPadMatching)
	mergeIf(&c.parenUncertaintySeparators, other.parenUncertaintySeparators)
	mergeIf(&c.pmWhitespace, other.pmWhitespace)

	c.extraSIPrefixes = c.extraSIPrefixes.Merge(other.extraSIPrefixes)
	c.extraIECPrefixes = c.extraIECPrefixes.Merge(other.extraIECPrefixes)
	c.extraPartsPerForms = c.extraPartsPerForms.Merge(other.extraPartsPerForms)
}

func mergeIf[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// specConfig translates a parsed format specification into a config.
func specConfig(spec *fsml.Spec) *config {
	c := &config{
		expMode:          spec.ExpMode,
		expVal:           spec.ExpVal,
		roundMode:        spec.RoundMode,
		ndigits:          spec.NDigits,
		upperSep:         spec.UpperSep,
		decimalSep:       spec.DecimalSep,
		lowerSep:         spec.LowerSep,
		signMode:         spec.SignMode,
		leftPadChar:      spec.FillChar,
		leftPadDecPlace:  spec.LeftPadDecPlace,
		expFormat:        spec.ExpFormat,
		capitalize:       spec.Capitalize,
		parenUncertainty: spec.ParenUncertainty,
		leftPadMatching:  spec.LeftPadMatching,
	}

	return c
}

// WithExpMode sets the exponent mode.
func WithExpMode(m mode.ExpMode) Option {
	return options.NoError(func(c *config) {
		c.expMode = &m
	})
}

// WithExpVal fixes the exponent value instead of letting the engine choose
// it. The value must satisfy the constraint of the exponent mode in effect
// when formatting: 0 for fixed-point and percent, a multiple of 3 for the
// engineering modes, a multiple of 10 for binary IEC.
func WithExpVal(exp int) Option {
	return options.NoError(func(c *config) {
		c.expVal = &exp
	})
}

// WithAutoExpVal restores automatic exponent selection.
func WithAutoExpVal() Option {
	return options.NoError(func(c *config) {
		exp := mode.AutoExpVal
		c.expVal = &exp
	})
}

// WithRoundMode sets the rounding mode.
func WithRoundMode(m mode.RoundMode) Option {
	return options.NoError(func(c *config) {
		c.roundMode = &m
	})
}

// WithNDigits sets the digit count for the rounding mode in effect:
// significant figures or decimal places.
func WithNDigits(n int) Option {
	return options.NoError(func(c *config) {
		c.ndigits = &n
	})
}

// WithSigFigs rounds to n significant figures.
func WithSigFigs(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidNDigits, n)
		}
		m := mode.SigFig
		c.roundMode = &m
		c.ndigits = &n

		return nil
	})
}

// WithDecPlaces rounds to n decimal places.
func WithDecPlaces(n int) Option {
	return options.NoError(func(c *config) {
		m := mode.DecPlace
		c.roundMode = &m
		c.ndigits = &n
	})
}

// WithUpperSeparator sets the grouping character above the decimal point.
func WithUpperSeparator(s mode.Separator) Option {
	return options.New(func(c *config) error {
		if !mode.ValidUpperSeparator(s) {
			return fmt.Errorf("%w: upper separator %q", errs.ErrInvalidSeparator, s)
		}
		c.upperSep = &s

		return nil
	})
}

// WithDecimalSeparator sets the decimal point character.
func WithDecimalSeparator(s mode.Separator) Option {
	return options.New(func(c *config) error {
		if !mode.ValidDecimalSeparator(s) {
			return fmt.Errorf("%w: decimal separator %q", errs.ErrInvalidSeparator, s)
		}
		c.decimalSep = &s

		return nil
	})
}

// WithLowerSeparator sets the grouping character below the decimal point.
func WithLowerSeparator(s mode.Separator) Option {
	return options.New(func(c *config) error {
		if !mode.ValidLowerSeparator(s) {
			return fmt.Errorf("%w: lower separator %q", errs.ErrInvalidSeparator, s)
		}
		c.lowerSep = &s

		return nil
	})
}

// WithSignMode sets how positive and zero values show their sign.
func WithSignMode(m mode.SignMode) Option {
	return options.NoError(func(c *config) {
		c.signMode = &m
	})
}

// WithLeftPadChar sets the left padding character, ' ' or '0'.
func WithLeftPadChar(ch byte) Option {
	return options.New(func(c *config) error {
		if ch != ' ' && ch != '0' {
			return fmt.Errorf("%w: got %q", errs.ErrInvalidPadChar, ch)
		}
		c.leftPadChar = &ch

		return nil
	})
}

// WithLeftPadDecPlace pads the integer part out to the given decimal
// place, e.g. 3 pads up to the thousands digit.
func WithLeftPadDecPlace(place int) Option {
	return options.New(func(c *config) error {
		if place < 0 {
			return fmt.Errorf("%w: left pad decimal place %d", errs.ErrInvalidOption, place)
		}
		c.leftPadDecPlace = &place

		return nil
	})
}

// WithExpFormat sets how the exponent is displayed: standard, prefix
// substitution, or parts-per substitution.
func WithExpFormat(f mode.ExpFormat) Option {
	return options.NoError(func(c *config) {
		c.expFormat = &f
	})
}

// WithExtraSIPrefixes adds SI prefix substitutions on top of the built-in
// table. A nil token suppresses the built-in entry for that exponent.
func WithExtraSIPrefixes(extra map[int]*string) Option {
	return options.NoError(func(c *config) {
		c.extraSIPrefixes = c.extraSIPrefixes.Merge(extra)
	})
}

// WithExtraIECPrefixes adds IEC prefix substitutions on top of the
// built-in table.
func WithExtraIECPrefixes(extra map[int]*string) Option {
	return options.NoError(func(c *config) {
		c.extraIECPrefixes = c.extraIECPrefixes.Merge(extra)
	})
}

// WithExtraPartsPerForms adds parts-per substitutions on top of the
// built-in table.
func WithExtraPartsPerForms(extra map[int]*string) Option {
	return options.NoError(func(c *config) {
		c.extraPartsPerForms = c.extraPartsPerForms.Merge(extra)
	})
}

// WithCPrefix enables the non-standard centi prefix "c" for exponent -2.
func WithCPrefix() Option {
	return WithExtraSIPrefixes(map[int]*string{-2: prefix.Token("c")})
}

// WithSmallSIPrefixes enables the less common SI prefixes between milli
// and kilo: centi, deci, deca and hecto.
func WithSmallSIPrefixes() Option {
	return WithExtraSIPrefixes(map[int]*string{
		-2: prefix.Token("c"),
		-1: prefix.Token("d"),
		1:  prefix.Token("da"),
		2:  prefix.Token("h"),
	})
}

// WithPpthForm enables the non-standard parts-per-thousand form "ppth" for
// exponent -3.
func WithPpthForm() Option {
	return WithExtraPartsPerForms(map[int]*string{-3: prefix.Token("ppth")})
}

// WithSuppressedSIPrefix disables the built-in SI prefix for the given
// exponent, falling back to the standard exponent string.
func WithSuppressedSIPrefix(exp int) Option {
	return WithExtraSIPrefixes(map[int]*string{exp: nil})
}

// WithSuppressedPartsPerForm disables the built-in parts-per form for the
// given exponent.
func WithSuppressedPartsPerForm(exp int) Option {
	return WithExtraPartsPerForms(map[int]*string{exp: nil})
}

// WithCapitalize renders e/b exponent symbols and non-finite values in
// upper case.
func WithCapitalize(on bool) Option {
	return options.NoError(func(c *config) {
		c.capitalize = &on
	})
}

// WithSuperscript renders the exponent as a Unicode superscript, e.g.
// ×10³.
func WithSuperscript(on bool) Option {
	return options.NoError(func(c *config) {
		c.superscript = &on
	})
}

// WithLatex renders the output as a LaTeX math-mode string.
func WithLatex(on bool) Option {
	return options.NoError(func(c *config) {
		c.latex = &on
	})
}

// WithNaNInfExp attaches an exponent string to non-finite values in the
// exponent-bearing modes, e.g. (nan)e+00.
func WithNaNInfExp(on bool) Option {
	return options.NoError(func(c *config) {
		c.nanInfExp = &on
	})
}

// WithParenUncertainty renders the uncertainty in parentheses after the
// value, e.g. 12.34(82), instead of the plus-minus form.
func WithParenUncertainty(on bool) Option {
	return options.NoError(func(c *config) {
		c.parenUncertainty = &on
	})
}

// WithPDGSigFigs applies the Particle Data Group rule to choose the number
// of significant figures for an uncertainty when no explicit digit count
// is given.
func WithPDGSigFigs(on bool) Option {
	return options.NoError(func(c *config) {
		c.pdgSigFigs = &on
	})
}

// WithLeftPadMatching pads the value and uncertainty to a common width.
func WithLeftPadMatching(on bool) Option {
	return options.NoError(func(c *config) {
		c.leftPadMatching = &on
	})
}

// WithParenUncertaintySeparators keeps separator characters inside a
// parenthesized uncertainty. When off, the uncertainty is compacted to its
// significant digits when it is smaller than the value.
func WithParenUncertaintySeparators(on bool) Option {
	return options.NoError(func(c *config) {
		c.parenUncertaintySeparators = &on
	})
}

// WithPMWhitespace surrounds the plus-minus symbol with spaces.
func WithPMWhitespace(on bool) Option {
	return options.NoError(func(c *config) {
		c.pmWhitespace = &on
	})
}
