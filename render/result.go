package render

import (
	"fmt"
	"strings"
)

// flavor selects one of the output renderings of a Result.
type flavor uint8

const (
	flavorStandard flavor = iota
	flavorSuper
	flavorLatex
	flavorHTML
	flavorASCII
)

// Result is a formatted number with enough structure retained (mantissa
// and exponent components) to produce the plain, LaTeX, HTML and ASCII
// renderings without re-parsing. All renderings agree on digit content.
type Result struct {
	opts Options

	valMantissa string // signed, padded, grouped mantissa (or nan/inf text)
	uncMantissa string // uncertainty mantissa, empty for single values
	joint       bool
	nonFinite   bool // single value on the non-finite path

	hasExp      bool // an exponent suffix should be rendered
	percent     bool
	expVal      int
	base        int
	prefixToken string
	prefixOK    bool

	warnings []string
}

// String returns the primary rendering, honoring the superscript and latex
// options.
func (r Result) String() string {
	switch {
	case r.opts.Latex:
		return r.render(flavorLatex)
	case r.opts.Superscript:
		return r.render(flavorSuper)
	default:
		return r.render(flavorStandard)
	}
}

// Latex returns the math-mode escaped LaTeX rendering.
func (r Result) Latex() string { return r.render(flavorLatex) }

// HTML returns the rendering with the exponent in superscript markup.
func (r Result) HTML() string { return r.render(flavorHTML) }

// ASCII returns the seven-bit rendering: standard exponent strings, "+/-"
// for the plus-minus symbol, "u" for the micro prefix.
func (r Result) ASCII() string { return r.render(flavorASCII) }

// Warnings lists non-fatal conditions encountered while formatting, such
// as a rounding-mode downgrade during value/uncertainty formatting.
func (r Result) Warnings() []string { return r.warnings }

func (r Result) render(fl flavor) string {
	var s string
	if r.joint {
		s = r.renderJoint(fl)
	} else {
		s = r.renderSingle(fl)
	}

	if fl == flavorLatex {
		s = latexTranslate(s)
	}

	return s
}

func (r Result) renderSingle(fl flavor) string {
	suffix := r.expSuffix(fl)
	if r.nonFinite && suffix != "" {
		return "(" + r.valMantissa + ")" + suffix
	}

	return r.valMantissa + suffix
}

func (r Result) renderJoint(fl flavor) string {
	var body string
	if r.opts.ParenUncertainty {
		body = r.valMantissa + "(" + r.uncMantissa + ")"
	} else {
		pm := pmSymbol(fl)
		if r.opts.PMWhitespace {
			pm = " " + pm + " "
		}
		body = r.valMantissa + pm + r.uncMantissa
	}

	if r.percent {
		return "(" + body + ")%"
	}

	suffix := r.expSuffix(fl)
	switch {
	case suffix == "":
		return body
	case r.opts.ParenUncertainty:
		// No ambiguity with a following suffix, e.g. 1234(12) k.
		return body + suffix
	default:
		return "(" + body + ")" + suffix
	}
}

// expSuffix renders the exponent part of the result for one flavor:
// percent symbol, substituted prefix token, or standard/superscript/LaTeX
// exponent string.
func (r Result) expSuffix(fl flavor) string {
	if r.percent {
		return "%"
	}
	if !r.hasExp {
		return ""
	}

	if r.prefixOK {
		tok := r.prefixToken
		if tok == "" {
			return ""
		}
		if fl == flavorLatex {
			return `\text{` + tok + `}`
		}
		if fl == flavorASCII {
			tok = strings.ReplaceAll(tok, "μ", "u")
		}

		return " " + tok
	}

	switch fl {
	case flavorLatex:
		return fmt.Sprintf(`\times %d^{%+d}`, r.base, r.expVal)
	case flavorSuper:
		return superscriptExpString(r.base, r.expVal)
	case flavorHTML:
		return fmt.Sprintf("×%d<sup>%d</sup>", r.base, r.expVal)
	default:
		return standardExpString(r.base, r.expVal, r.opts.Capitalize)
	}
}

func pmSymbol(fl flavor) string {
	switch fl {
	case flavorLatex:
		return `\pm`
	case flavorASCII:
		return "+/-"
	default:
		return "±"
	}
}
