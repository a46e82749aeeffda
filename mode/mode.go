// Package mode defines the closed mode enumerations consumed by the
// formatting engine: exponent modes, rounding modes, sign modes, exponent
// formats and grouping separators, plus the Auto sentinels used for
// "engine selects the value" options.
package mode

import (
	"fmt"
	"math"
	"strings"

	"github.com/sciform/sciform/errs"
)

type (
	ExpMode   uint8
	RoundMode uint8
	SignMode  uint8
	ExpFormat uint8
)

const (
	FixedPoint         ExpMode = iota + 1 // FixedPoint renders without an exponent.
	Percent                               // Percent scales by 100 and appends '%'.
	Scientific                            // Scientific selects a mantissa in [1, 10).
	Engineering                           // Engineering constrains the exponent to multiples of 3.
	EngineeringShifted                    // EngineeringShifted selects a mantissa in [0.1, 100).
	Binary                                // Binary uses base 2 with a free exponent.
	BinaryIEC                             // BinaryIEC constrains the base-2 exponent to multiples of 10.
)

const (
	SigFig   RoundMode = iota + 1 // SigFig rounds to a number of significant figures.
	DecPlace                      // DecPlace rounds to a decimal place.
)

const (
	SignNegative SignMode = iota + 1 // SignNegative shows a sign for negative values only.
	SignAlways                       // SignAlways shows '+' for positive values.
	SignSpace                        // SignSpace shows a space for positive values.
)

const (
	ExpStandard ExpFormat = iota + 1 // ExpStandard renders e.g. 'e+02'.
	ExpPrefix                        // ExpPrefix substitutes SI/IEC prefix tokens.
	ExpPartsPer                      // ExpPartsPer substitutes parts-per tokens.
)

// AutoExpVal and AutoDigits request automatic selection of the exponent
// value and the rounding digit count respectively.
const (
	AutoExpVal = math.MinInt
	AutoDigits = math.MinInt
)

func (m ExpMode) String() string {
	switch m {
	case FixedPoint:
		return "FixedPoint"
	case Percent:
		return "Percent"
	case Scientific:
		return "Scientific"
	case Engineering:
		return "Engineering"
	case EngineeringShifted:
		return "EngineeringShifted"
	case Binary:
		return "Binary"
	case BinaryIEC:
		return "BinaryIEC"
	default:
		return "Unknown"
	}
}

// Base returns the numeric base implied by the exponent mode.
func (m ExpMode) Base() int {
	if m == Binary || m == BinaryIEC {
		return 2
	}

	return 10
}

// Free returns the equivalent exponent mode without engineering or IEC
// exponent compaction, so an explicit exponent can be applied exactly.
func (m ExpMode) Free() ExpMode {
	switch m {
	case Engineering, EngineeringShifted:
		return Scientific
	case BinaryIEC:
		return Binary
	default:
		return m
	}
}

func (m RoundMode) String() string {
	switch m {
	case SigFig:
		return "SigFig"
	case DecPlace:
		return "DecPlace"
	default:
		return "Unknown"
	}
}

func (m SignMode) String() string {
	switch m {
	case SignNegative:
		return "Negative"
	case SignAlways:
		return "Always"
	case SignSpace:
		return "Space"
	default:
		return "Unknown"
	}
}

func (f ExpFormat) String() string {
	switch f {
	case ExpStandard:
		return "Standard"
	case ExpPrefix:
		return "Prefix"
	case ExpPartsPer:
		return "PartsPer"
	default:
		return "Unknown"
	}
}

// ParseExpMode resolves a case-insensitive exponent mode name, as used by
// command line flags and configuration files.
func ParseExpMode(s string) (ExpMode, error) {
	switch strings.ToLower(s) {
	case "fixed", "fixedpoint", "fixed-point":
		return FixedPoint, nil
	case "percent":
		return Percent, nil
	case "scientific":
		return Scientific, nil
	case "engineering":
		return Engineering, nil
	case "engineeringshifted", "engineering-shifted":
		return EngineeringShifted, nil
	case "binary":
		return Binary, nil
	case "binaryiec", "binary-iec":
		return BinaryIEC, nil
	default:
		return 0, fmt.Errorf("%w: exponent mode %q", errs.ErrInvalidOption, s)
	}
}

// ParseRoundMode resolves a case-insensitive rounding mode name.
func ParseRoundMode(s string) (RoundMode, error) {
	switch strings.ToLower(s) {
	case "sigfig", "sig-fig":
		return SigFig, nil
	case "decplace", "dec-place":
		return DecPlace, nil
	default:
		return 0, fmt.Errorf("%w: round mode %q", errs.ErrInvalidOption, s)
	}
}

// ParseSignMode resolves a case-insensitive sign mode name.
func ParseSignMode(s string) (SignMode, error) {
	switch strings.ToLower(s) {
	case "negative":
		return SignNegative, nil
	case "always":
		return SignAlways, nil
	case "space":
		return SignSpace, nil
	default:
		return 0, fmt.Errorf("%w: sign mode %q", errs.ErrInvalidOption, s)
	}
}

// ParseExpFormat resolves a case-insensitive exponent format name.
func ParseExpFormat(s string) (ExpFormat, error) {
	switch strings.ToLower(s) {
	case "standard":
		return ExpStandard, nil
	case "prefix":
		return ExpPrefix, nil
	case "partsper", "parts-per":
		return ExpPartsPer, nil
	default:
		return 0, fmt.Errorf("%w: exponent format %q", errs.ErrInvalidOption, s)
	}
}
