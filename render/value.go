package render

import (
	"strings"

	"github.com/sciform/sciform/mode"
	"github.com/sciform/sciform/internal/num"
)

// Value formats a single number according to resolved options. The options
// must already have passed Validate.
func Value(n num.Number, o Options) (Result, error) {
	if !n.IsFinite() {
		return nonFiniteResult(n, o), nil
	}

	percent := o.ExpMode == mode.Percent
	if percent {
		n = n.ShiftPow10(2)
	}

	mant, expVal, base, err := mantissaExpBase(n, o.ExpMode, o.ExpVal)
	if err != nil {
		return Result{}, err
	}

	rd := roundDigit(mant, o.RoundMode, o.NDigits, false)
	mant = mant.RoundToPlace(rd)

	// Rounding can push the mantissa across a decade boundary (9.99 to
	// 10.0), invalidating an auto-resolved exponent. Re-resolve from the
	// rounded value and round once more at the fixed target place.
	rounded := rescale(mant, base, expVal)
	mant, expVal, base, err = mantissaExpBase(rounded, o.ExpMode, o.ExpVal)
	if err != nil {
		return Result{}, err
	}
	rd = roundDigit(mant, o.RoundMode, o.NDigits, false)
	mant = mant.RoundToPlace(rd)

	if mant.IsZero() && o.ExpVal == mode.AutoExpVal {
		expVal = 0
	}

	s := mantissaString(mant, o.LeftPadDecPlace, rd, o.SignMode, o.LeftPadChar)
	s = addSeparators(s, o.UpperSep, o.DecimalSep, o.LowerSep)

	r := Result{
		opts:        o,
		valMantissa: s,
		percent:     percent,
		expVal:      expVal,
		base:        base,
	}
	r.hasExp = !percent && o.ExpMode != mode.FixedPoint
	if r.hasExp {
		r.prefixToken, r.prefixOK = resolvePrefixToken(o, base, expVal)
	}

	return r, nil
}

// rescale undoes the mantissa/exponent split so the exponent can be
// re-resolved from the rounded value.
func rescale(mant num.Number, base, expVal int) num.Number {
	if base == 2 {
		return mant.MulPow2(expVal)
	}

	return mant.ShiftPow10(expVal)
}

func nonFiniteResult(n num.Number, o Options) Result {
	var text string
	switch {
	case n.IsNaN():
		text = "nan"
	case n.Sign() > 0:
		text = "inf"
	default:
		text = "-inf"
	}
	if o.Capitalize {
		text = strings.ToUpper(text)
	}
	if o.SignMode == mode.SignAlways || o.SignMode == mode.SignSpace {
		if !strings.HasPrefix(text, "-") {
			text = " " + text
		}
	}

	r := Result{
		opts:        o,
		valMantissa: text,
		nonFinite:   true,
		percent:     o.ExpMode == mode.Percent,
		base:        o.ExpMode.Base(),
	}
	if o.NaNInfExp && o.ExpMode != mode.FixedPoint && o.ExpMode != mode.Percent {
		r.hasExp = true
		r.expVal = 0
		if o.ExpVal != mode.AutoExpVal {
			r.expVal = o.ExpVal
		}
		r.prefixToken, r.prefixOK = resolvePrefixToken(o, r.base, r.expVal)
	}

	return r
}
