package render

import (
	"strings"

	"github.com/sciform/sciform/mode"
	"github.com/sciform/sciform/internal/num"
)

// signString returns the sign prefix for n. Negative magnitudes always get
// a minus; zero and non-finite magnitudes get a visible blank under the
// always/space modes so columns stay aligned.
func signString(n num.Number, signMode mode.SignMode) string {
	sign := n.Sign()
	switch {
	case sign < 0:
		return "-"
	case sign > 0:
		switch signMode {
		case mode.SignAlways:
			return "+"
		case mode.SignSpace:
			return " "
		default:
			return ""
		}
	default:
		if signMode == mode.SignAlways || signMode == mode.SignSpace {
			return " "
		}

		return ""
	}
}

// padString returns the left padding from the natural top digit place up to
// the target place.
func padString(padChar byte, topDigit, targetTop int) string {
	if targetTop <= topDigit {
		return ""
	}

	return strings.Repeat(string(padChar), targetTop-max(topDigit, 0))
}

// mantissaString formats a finite, already-rounded number with exactly
// max(0, -targetBottom) fractional digits, a sign per signMode, and left
// padding up to targetTop. Zero padding sits between the sign and the
// digits; space padding sits outside the sign so the sign stays adjacent
// to the first digit.
func mantissaString(n num.Number, targetTop, targetBottom int, signMode mode.SignMode, padChar byte) string {
	printPrec := max(0, -targetBottom)
	digits := n.Abs().FixedString(printPrec)

	sign := signString(n, signMode)
	pad := padString(padChar, n.TopDigit(), targetTop)

	if padChar == ' ' {
		return pad + sign + digits
	}

	return sign + pad + digits
}
