package render

import (
	"fmt"

	"github.com/sciform/sciform/errs"
	"github.com/sciform/sciform/mode"
	"github.com/sciform/sciform/prefix"
)

// Options is the fully resolved configuration consumed by the rendering
// functions. Every field is populated; merging partial caller options with
// defaults is the caller's responsibility. Rendering reads no state besides
// this record.
type Options struct {
	ExpMode   mode.ExpMode
	ExpVal    int // mode.AutoExpVal selects the exponent automatically
	RoundMode mode.RoundMode
	NDigits   int // mode.AutoDigits rounds to the value's own precision

	UpperSep   mode.Separator
	DecimalSep mode.Separator
	LowerSep   mode.Separator

	SignMode        mode.SignMode
	LeftPadChar     byte // ' ' or '0'
	LeftPadDecPlace int

	ExpFormat          mode.ExpFormat
	ExtraSIPrefixes    prefix.Overrides
	ExtraIECPrefixes   prefix.Overrides
	ExtraPartsPerForms prefix.Overrides

	Capitalize  bool
	Superscript bool
	Latex       bool
	NaNInfExp   bool

	ParenUncertainty           bool
	PDGSigFigs                 bool
	LeftPadMatching            bool
	ParenUncertaintySeparators bool
	PMWhitespace               bool
}

// DefaultOptions returns the factory defaults: fixed-point display at the
// value's own precision with no grouping.
func DefaultOptions() Options {
	return Options{
		ExpMode:                    mode.FixedPoint,
		ExpVal:                     mode.AutoExpVal,
		RoundMode:                  mode.SigFig,
		NDigits:                    mode.AutoDigits,
		UpperSep:                   mode.SepNone,
		DecimalSep:                 mode.SepPoint,
		LowerSep:                   mode.SepNone,
		SignMode:                   mode.SignNegative,
		LeftPadChar:                ' ',
		LeftPadDecPlace:            0,
		ExpFormat:                  mode.ExpStandard,
		ParenUncertaintySeparators: true,
		PMWhitespace:               true,
	}
}

// Validate checks every configuration constraint that does not depend on
// the value being formatted. It is called by the façade after option
// merging, before any digit-place arithmetic runs.
func (o Options) Validate() error {
	switch o.ExpMode {
	case mode.FixedPoint, mode.Percent, mode.Scientific, mode.Engineering,
		mode.EngineeringShifted, mode.Binary, mode.BinaryIEC:
	default:
		return fmt.Errorf("%w: exponent mode %d", errs.ErrInvalidOption, o.ExpMode)
	}

	switch o.RoundMode {
	case mode.SigFig, mode.DecPlace:
	default:
		return fmt.Errorf("%w: round mode %d", errs.ErrInvalidOption, o.RoundMode)
	}

	switch o.SignMode {
	case mode.SignNegative, mode.SignAlways, mode.SignSpace:
	default:
		return fmt.Errorf("%w: sign mode %d", errs.ErrInvalidOption, o.SignMode)
	}

	switch o.ExpFormat {
	case mode.ExpStandard, mode.ExpPrefix, mode.ExpPartsPer:
	default:
		return fmt.Errorf("%w: exponent format %d", errs.ErrInvalidOption, o.ExpFormat)
	}

	if o.RoundMode == mode.SigFig && o.NDigits != mode.AutoDigits && o.NDigits < 1 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidNDigits, o.NDigits)
	}

	if !mode.ValidUpperSeparator(o.UpperSep) {
		return fmt.Errorf("%w: upper separator %q", errs.ErrInvalidSeparator, o.UpperSep)
	}
	if !mode.ValidDecimalSeparator(o.DecimalSep) {
		return fmt.Errorf("%w: decimal separator %q", errs.ErrInvalidSeparator, o.DecimalSep)
	}
	if !mode.ValidLowerSeparator(o.LowerSep) {
		return fmt.Errorf("%w: lower separator %q", errs.ErrInvalidSeparator, o.LowerSep)
	}
	if o.UpperSep == o.DecimalSep {
		return fmt.Errorf("%w: upper and decimal separators are both %q",
			errs.ErrInvalidSeparator, o.UpperSep)
	}

	if o.LeftPadChar != ' ' && o.LeftPadChar != '0' {
		return fmt.Errorf("%w: got %q", errs.ErrInvalidPadChar, o.LeftPadChar)
	}

	if o.ExpVal != mode.AutoExpVal {
		if err := checkExpConstraint(o.ExpMode, o.ExpVal); err != nil {
			return err
		}
	}

	return nil
}

// checkExpConstraint validates a fixed exponent value against the mode.
func checkExpConstraint(m mode.ExpMode, exp int) error {
	switch m {
	case mode.FixedPoint, mode.Percent:
		if exp != 0 {
			return fmt.Errorf("%w: %s mode requires exponent 0, got %d",
				errs.ErrInvalidExponent, m, exp)
		}
	case mode.Engineering, mode.EngineeringShifted:
		if exp%3 != 0 {
			return fmt.Errorf("%w: %s mode requires a multiple of 3, got %d",
				errs.ErrInvalidExponent, m, exp)
		}
	case mode.BinaryIEC:
		if exp%10 != 0 {
			return fmt.Errorf("%w: %s mode requires a multiple of 10, got %d",
				errs.ErrInvalidExponent, m, exp)
		}
	case mode.Scientific, mode.Binary:
		// Any integer exponent is allowed.
	}

	return nil
}
