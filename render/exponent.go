package render

import (
	"github.com/sciform/sciform/mode"
	"github.com/sciform/sciform/internal/num"
)

// mantissaExpBase resolves the display exponent and base for n under the
// given exponent mode, and returns the normalized mantissa n * base^(-exp).
// Zero and non-finite values keep exponent 0 (or the fixed exponent when
// one is given) with the value itself as a sentinel mantissa.
func mantissaExpBase(n num.Number, expMode mode.ExpMode, inputExp int) (num.Number, int, int, error) {
	base := expMode.Base()

	if !n.IsFinite() || n.IsZero() {
		exp := 0
		if inputExp != mode.AutoExpVal {
			exp = inputExp
		}

		return n.Normalize(), exp, base, nil
	}

	if inputExp != mode.AutoExpVal {
		if err := checkExpConstraint(expMode, inputExp); err != nil {
			return num.Number{}, 0, 0, err
		}
	}

	var exp int
	switch expMode {
	case mode.FixedPoint, mode.Percent:
		exp = 0
	case mode.Scientific:
		exp = autoOrFixed(n.TopDigit(), inputExp)
	case mode.Engineering:
		exp = autoOrFixed(floorMultiple(n.TopDigit(), 3), inputExp)
	case mode.EngineeringShifted:
		exp = autoOrFixed(floorMultiple(n.TopDigit()+1, 3), inputExp)
	case mode.Binary:
		exp = autoOrFixed(n.TopDigitBinary(), inputExp)
	case mode.BinaryIEC:
		exp = autoOrFixed(floorMultiple(n.TopDigitBinary(), 10), inputExp)
	}

	var mantissa num.Number
	if base == 2 {
		mantissa = n.MulPow2(-exp)
	} else {
		mantissa = n.ShiftPow10(-exp)
	}

	return mantissa.Normalize(), exp, base, nil
}

func autoOrFixed(auto, inputExp int) int {
	if inputExp == mode.AutoExpVal {
		return auto
	}

	return inputExp
}

// floorMultiple rounds v down to the nearest multiple of m, also for
// negative v.
func floorMultiple(v, m int) int {
	q := v / m
	if v%m < 0 {
		q--
	}

	return q * m
}
