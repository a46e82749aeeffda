// Package sciform formats numbers the way scientific publications print
// them: fixed-point, percent, scientific, engineering and binary exponent
// notation, significant-figure and decimal-place rounding (including the
// Particle Data Group convention for uncertainties), digit grouping, SI
// and IEC prefix substitution, and joint value/uncertainty strings such as
// "(12.3457 ± 0.0034)×10³" or "123.4(23)".
//
// A Formatter carries a reusable configuration built from functional
// options or compiled from a compact format specification string:
//
//	f, err := sciform.NewFormatter(
//		sciform.WithExpMode(mode.Engineering),
//		sciform.WithSigFigs(4),
//	)
//	...
//	res, err := f.Format(12345.678) // "12.35e+03"
//
//	g, err := sciform.NewFormatterFromSpec("!4rp")
//	...
//	res, err = g.Format(12345.678) // "12.35 k" (engineering + SI prefix)
//
// Results keep their mantissa/exponent structure, so one formatting call
// yields matching plain, LaTeX, HTML and ASCII renderings. Unset options
// fall back to the process-wide defaults (SetDefaultOptions,
// OverrideDefaultOptions) and then to the factory defaults. Formatters are
// immutable after construction and safe for concurrent use.
package sciform

import (
	"github.com/shopspring/decimal"

	"github.com/sciform/sciform/fsml"
	"github.com/sciform/sciform/internal/options"
	"github.com/sciform/sciform/internal/num"
	"github.com/sciform/sciform/render"
)

// Formatted is a formatting result. Its String method returns the primary
// rendering; Latex, HTML and ASCII return the alternates, and Warnings
// reports non-fatal conditions hit while formatting.
type Formatted = render.Result

// Formatter renders numbers under a fixed configuration.
type Formatter struct {
	cfg *config
}

// NewFormatter builds a Formatter from functional options. Options left
// unset fall back to the process-wide defaults at each formatting call.
func NewFormatter(opts ...Option) (*Formatter, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Formatter{cfg: cfg}, nil
}

// NewFormatterFromSpec builds a Formatter from a format specification
// string (see package fsml for the grammar). Additional options are
// applied on top of the compiled specification.
func NewFormatterFromSpec(spec string, opts ...Option) (*Formatter, error) {
	parsed, err := fsml.Parse(spec)
	if err != nil {
		return nil, err
	}

	cfg := specConfig(parsed)
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Formatter{cfg: cfg}, nil
}

// Format renders a single float64 value.
func (f *Formatter) Format(val float64) (Formatted, error) {
	return f.formatNumber(num.FromFloat64(val))
}

// FormatUncertainty renders a value with its uncertainty. The sign of the
// uncertainty is ignored.
func (f *Formatter) FormatUncertainty(val, unc float64) (Formatted, error) {
	return f.formatPair(num.FromFloat64(val), num.FromFloat64(unc))
}

// FormatString renders a value given as a decimal string. The digits are
// used exactly as written, with no binary floating-point round trip.
func (f *Formatter) FormatString(val string) (Formatted, error) {
	n, err := num.FromString(val)
	if err != nil {
		return Formatted{}, err
	}

	return f.formatNumber(n)
}

// FormatStringUncertainty renders a value and uncertainty given as decimal
// strings.
func (f *Formatter) FormatStringUncertainty(val, unc string) (Formatted, error) {
	v, err := num.FromString(val)
	if err != nil {
		return Formatted{}, err
	}
	u, err := num.FromString(unc)
	if err != nil {
		return Formatted{}, err
	}

	return f.formatPair(v, u)
}

// FormatDecimal renders an exact decimal value.
func (f *Formatter) FormatDecimal(val decimal.Decimal) (Formatted, error) {
	return f.formatNumber(num.FromDecimal(val))
}

// FormatDecimalUncertainty renders an exact decimal value with its
// uncertainty.
func (f *Formatter) FormatDecimalUncertainty(val, unc decimal.Decimal) (Formatted, error) {
	return f.formatPair(num.FromDecimal(val), num.FromDecimal(unc))
}

func (f *Formatter) formatNumber(n num.Number) (Formatted, error) {
	o, err := resolve(f.cfg)
	if err != nil {
		return Formatted{}, err
	}

	return render.Value(n, o)
}

func (f *Formatter) formatPair(val, unc num.Number) (Formatted, error) {
	o, err := resolve(f.cfg)
	if err != nil {
		return Formatted{}, err
	}

	return render.ValueUncertainty(val, unc, o)
}

// Format renders a value with one-off options, without building a
// Formatter first.
func Format(val float64, opts ...Option) (Formatted, error) {
	f, err := NewFormatter(opts...)
	if err != nil {
		return Formatted{}, err
	}

	return f.Format(val)
}

// FormatSpec renders a value under a format specification string.
func FormatSpec(val float64, spec string) (Formatted, error) {
	f, err := NewFormatterFromSpec(spec)
	if err != nil {
		return Formatted{}, err
	}

	return f.Format(val)
}

// FormatUncertainty renders a value/uncertainty pair with one-off options.
func FormatUncertainty(val, unc float64, opts ...Option) (Formatted, error) {
	f, err := NewFormatter(opts...)
	if err != nil {
		return Formatted{}, err
	}

	return f.FormatUncertainty(val, unc)
}

// FormatSpecUncertainty renders a value/uncertainty pair under a format
// specification string.
func FormatSpecUncertainty(val, unc float64, spec string) (Formatted, error) {
	f, err := NewFormatterFromSpec(spec)
	if err != nil {
		return Formatted{}, err
	}

	return f.FormatUncertainty(val, unc)
}
