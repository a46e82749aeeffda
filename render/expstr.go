package render

import (
	"fmt"
	"strings"

	"github.com/sciform/sciform/mode"
	"github.com/sciform/sciform/prefix"
)

// resolvePrefixToken looks up the substitution token for the exponent
// value under the configured exponent format. It reports false when the
// standard exponent string should be used instead.
func resolvePrefixToken(o Options, base, expVal int) (string, bool) {
	switch o.ExpFormat {
	case mode.ExpPrefix:
		if base == 2 {
			return prefix.Lookup(prefix.IEC, o.ExtraIECPrefixes, expVal)
		}

		return prefix.Lookup(prefix.SI, o.ExtraSIPrefixes, expVal)
	case mode.ExpPartsPer:
		return prefix.Lookup(prefix.PartsPer, o.ExtraPartsPerForms, expVal)
	default:
		return "", false
	}
}

// standardExpString renders e.g. "e+02" or "b-10", with the exponent
// zero-padded to at least two digits.
func standardExpString(base, expVal int, capitalize bool) string {
	symbol := "e"
	if base == 2 {
		symbol = "b"
	}
	if capitalize {
		symbol = strings.ToUpper(symbol)
	}

	return fmt.Sprintf("%s%+03d", symbol, expVal)
}

var superscriptDigits = map[rune]rune{
	'-': '⁻',
	'+': '⁺',
	'0': '⁰',
	'1': '¹',
	'2': '²',
	'3': '³',
	'4': '⁴',
	'5': '⁵',
	'6': '⁶',
	'7': '⁷',
	'8': '⁸',
	'9': '⁹',
}

// superscriptExpString renders e.g. "×10³" or "×2⁻¹⁰".
func superscriptExpString(base, expVal int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "×%d", base)
	for _, r := range fmt.Sprintf("%d", expVal) {
		b.WriteRune(superscriptDigits[r])
	}

	return b.String()
}

// latexTranslate escapes the characters of a formatted string that need
// protection inside LaTeX math mode.
var latexReplacements = [...][2]string{
	{"(", `\left(`},
	{")", `\right)`},
	{"%", `\%`},
	{"_", `\_`},
	{"nan", `\text{nan}`},
	{"NAN", `\text{NAN}`},
	{"inf", `\text{inf}`},
	{"INF", `\text{INF}`},
}

func latexTranslate(s string) string {
	for _, repl := range latexReplacements {
		s = strings.ReplaceAll(s, repl[0], repl[1])
	}

	return s
}
