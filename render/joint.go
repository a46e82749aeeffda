package render

import (
	"strings"

	"github.com/sciform/sciform/mode"
	"github.com/sciform/sciform/internal/num"
)

// ValueUncertainty formats a value together with its uncertainty: both are
// rounded at the place selected by the uncertainty, share one exponent, and
// are rendered with matching precision.
func ValueUncertainty(val, unc num.Number, o Options) (Result, error) {
	var warnings []string

	if o.RoundMode == mode.DecPlace {
		warnings = append(warnings,
			"decimal place rounding is not supported for value/uncertainty formatting, "+
				"rounding to significant figures instead")
		o.RoundMode = mode.SigFig
	}

	unc = unc.Abs()

	percent := o.ExpMode == mode.Percent
	if percent {
		val = val.ShiftPow10(2)
		unc = unc.ShiftPow10(2)
	}

	valR, uncR, rd := roundValUnc(val, unc, o.NDigits, o.PDGSigFigs)
	// Rounding the uncertainty can carry into a new decade (0.099 to
	// 0.10), so the round place is re-derived once from the rounded pair.
	valR, uncR, rd = roundValUnc(valR, uncR, o.NDigits, o.PDGSigFigs)

	expDriver := valR
	if !valR.IsFinite() {
		expDriver = uncR
	}

	_, expVal, base, err := mantissaExpBase(expDriver, o.ExpMode, o.ExpVal)
	if err != nil {
		return Result{}, err
	}

	prec := expVal - rd
	if !valR.IsFinite() && !uncR.IsFinite() {
		expVal = 0
		prec = 0
	}

	freeMode := o.ExpMode.Free()
	if percent {
		freeMode = mode.FixedPoint
	}

	topTarget := o.LeftPadDecPlace
	if o.LeftPadMatching {
		if valR.IsFinite() {
			m, _, _, _ := mantissaExpBase(valR, freeMode, expVal)
			topTarget = max(topTarget, m.TopDigit())
		}
		if uncR.IsFinite() {
			m, _, _, _ := mantissaExpBase(uncR, freeMode, expVal)
			topTarget = max(topTarget, m.TopDigit())
		}
	}

	sub := o
	sub.ExpMode = freeMode
	sub.ExpVal = expVal
	sub.RoundMode = mode.DecPlace
	sub.NDigits = prec
	sub.LeftPadDecPlace = topTarget
	sub.ExpFormat = mode.ExpStandard
	sub.Superscript = false
	sub.Latex = false

	valRes, err := Value(valR, sub)
	if err != nil {
		return Result{}, err
	}

	sub.SignMode = mode.SignNegative
	uncRes, err := Value(uncR, sub)
	if err != nil {
		return Result{}, err
	}

	expSrc := valRes
	if !valR.IsFinite() {
		expSrc = uncRes
	}

	r := Result{
		opts:        o,
		joint:       true,
		valMantissa: valRes.valMantissa,
		uncMantissa: uncRes.valMantissa,
		percent:     percent,
		hasExp:      expSrc.hasExp,
		expVal:      expVal,
		base:        base,
		warnings:    warnings,
	}
	if r.hasExp {
		r.prefixToken, r.prefixOK = resolvePrefixToken(o, base, expVal)
	}
	if o.ParenUncertainty {
		r.uncMantissa = parenUncStr(r.uncMantissa, val, unc, o)
	}

	return r, nil
}

// roundValUnc picks the rounding place from the uncertainty when it is
// finite and nonzero, otherwise from the value, and rounds both to it.
// The PDG significant-figure rule only ever applies to the uncertainty.
func roundValUnc(val, unc num.Number, ndigits int, pdgSigFigs bool) (num.Number, num.Number, int) {
	uncDrives := unc.IsFinite() && !unc.IsZero()

	var rd int
	switch {
	case uncDrives:
		rd = roundDigit(unc, mode.SigFig, ndigits, pdgSigFigs)
		unc = unc.RoundToPlace(rd)
	case val.IsFinite():
		rd = roundDigit(val, mode.SigFig, ndigits, false)
	}

	if val.IsFinite() {
		val = val.RoundToPlace(rd)
	}

	return val, unc, rd
}

// parenUncStr compacts the uncertainty for the parenthesized form. When
// separators are disabled and the uncertainty is smaller than the value,
// only its significant digits remain, e.g. 123.4(23) for 123.4 ± 2.3.
func parenUncStr(uncStr string, val, unc num.Number, o Options) string {
	if o.ParenUncertaintySeparators {
		return uncStr
	}
	if !val.IsFinite() || !unc.IsFinite() {
		return uncStr
	}
	if unc.IsZero() || unc.Cmp(val.Abs()) >= 0 {
		return uncStr
	}

	for _, sep := range []string{string(o.UpperSep), string(o.DecimalSep), string(o.LowerSep)} {
		if sep != "" {
			uncStr = strings.ReplaceAll(uncStr, sep, "")
		}
	}

	return strings.TrimLeft(uncStr, "0")
}
