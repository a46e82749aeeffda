package render

import (
	"github.com/sciform/sciform/mode"
	"github.com/sciform/sciform/internal/num"
)

// roundDigit computes the decimal place to which n should be rounded.
// Auto significant figures round to the value's own full precision, which
// is a no-op rounding that still fixes the digit place used for padding.
func roundDigit(n num.Number, roundMode mode.RoundMode, ndigits int, pdgSigFigs bool) int {
	switch roundMode {
	case mode.SigFig:
		if ndigits == mode.AutoDigits {
			if pdgSigFigs {
				return pdgRoundDigit(n)
			}

			return n.BottomDigit()
		}

		return n.TopDigit() - (ndigits - 1)
	case mode.DecPlace:
		if ndigits == mode.AutoDigits {
			return n.BottomDigit()
		}

		return -ndigits
	default:
		return n.BottomDigit()
	}
}

// pdgRoundDigit applies the Particle Data Group 3-5-4 rule: the top three
// significant digits of n select two significant figures (100-354), three
// (355-949), or a round-up through 1000 that leaves an effective two
// figures with a carried leading digit (950-999).
//
// See https://pdg.lbl.gov/2010/reviews/rpp2010-rev-rpp-intro.pdf, section 5.2.
func pdgRoundDigit(n num.Number) int {
	topDigit := n.TopDigit()

	// Scale |n| so its top three digits form an integer in [100, 999].
	topThree := int(n.Abs().ShiftPow10(2 - topDigit).Decimal().IntPart())

	if topThree <= 354 {
		return topDigit - 1
	}

	return topDigit
}
