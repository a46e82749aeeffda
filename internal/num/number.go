// Package num provides the exact decimal number model used by the
// formatting engine. A Number is either a finite arbitrary-precision
// decimal or one of the non-finite forms (NaN, +Inf, -Inf), which the
// engine renders on a dedicated path that never performs digit-place
// arithmetic.
//
// Finite values are backed by shopspring decimals. Binary floating-point
// inputs are converted through their shortest round-trip decimal text, so
// 0.1 enters the pipeline as exactly 0.1 rather than its binary expansion.
package num

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sciform/sciform/errs"
)

type form uint8

const (
	finite form = iota
	nan
	posInf
	negInf
)

// Number is an exact decimal value or a non-finite marker.
type Number struct {
	dec  decimal.Decimal
	form form
}

// NaN and Inf construct non-finite numbers. Inf follows the math.Inf sign
// convention.
func NaN() Number { return Number{form: nan} }

func Inf(sign int) Number {
	if sign < 0 {
		return Number{form: negInf}
	}

	return Number{form: posInf}
}

// FromFloat64 converts f exactly via its shortest decimal representation.
func FromFloat64(f float64) Number {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 1):
		return Inf(1)
	case math.IsInf(f, -1):
		return Inf(-1)
	default:
		return Number{dec: decimal.NewFromFloat(f)}
	}
}

// FromString parses a decimal string, accepting the usual non-finite
// spellings (nan, inf, +inf, -inf, infinity) case-insensitively.
func FromString(s string) (Number, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nan":
		return NaN(), nil
	case "inf", "+inf", "infinity", "+infinity":
		return Inf(1), nil
	case "-inf", "-infinity":
		return Inf(-1), nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q", errs.ErrInvalidNumber, s)
	}

	return Number{dec: d}, nil
}

// FromDecimal wraps an exact decimal value.
func FromDecimal(d decimal.Decimal) Number {
	return Number{dec: d}
}

func (n Number) IsFinite() bool { return n.form == finite }
func (n Number) IsNaN() bool    { return n.form == nan }

// IsInf reports infinity of either sign.
func (n Number) IsInf() bool { return n.form == posInf || n.form == negInf }

// IsZero reports a finite zero.
func (n Number) IsZero() bool { return n.form == finite && n.dec.IsZero() }

// Sign returns -1, 0, or +1. NaN reports 0.
func (n Number) Sign() int {
	switch n.form {
	case posInf:
		return 1
	case negInf:
		return -1
	case nan:
		return 0
	default:
		return n.dec.Sign()
	}
}

// Decimal returns the underlying decimal. Only meaningful for finite
// numbers.
func (n Number) Decimal() decimal.Decimal { return n.dec }

func (n Number) Abs() Number {
	switch n.form {
	case negInf:
		return Number{form: posInf}
	case finite:
		return Number{dec: n.dec.Abs()}
	default:
		return n
	}
}

// Cmp compares finite numbers. It must not be called on non-finite values.
func (n Number) Cmp(other Number) int {
	return n.dec.Cmp(other.dec)
}

// TopDigit returns the decimal place of the most significant digit, e.g. 3
// for 1000 and -2 for 0.0999. Zero and non-finite values report 0.
func (n Number) TopDigit() int {
	if !n.IsFinite() || n.dec.IsZero() {
		return 0
	}

	coeff := new(big.Int).Abs(n.dec.Coefficient())

	return len(coeff.String()) + int(n.dec.Exponent()) - 1
}

// BottomDigit returns the decimal place of the least significant digit of
// the exact representation, including stored trailing zeros. Non-finite
// values report 0.
func (n Number) BottomDigit() int {
	if !n.IsFinite() {
		return 0
	}

	return int(n.dec.Exponent())
}

// TopDigitBinary returns floor(log2(|n|)). Zero and non-finite values
// report 0. The float estimate is corrected with exact comparisons so
// power-of-two boundaries never go off by one.
func (n Number) TopDigitBinary() int {
	if !n.IsFinite() || n.dec.IsZero() {
		return 0
	}

	abs := n.Abs()
	// |n| lies in [10^t, 10^(t+1)), so log2 is near t*log2(10).
	e := int(math.Floor(float64(abs.TopDigit()) * math.Log2(10)))

	for abs.Cmp(pow2(e+1)) >= 0 {
		e++
	}
	for abs.Cmp(pow2(e)) < 0 {
		e--
	}

	return e
}

// Normalize strips trailing zeros from the coefficient, so 1.000 reports
// bottom digit 0 and 100 reports bottom digit 2. Non-finite values are
// returned unchanged.
func (n Number) Normalize() Number {
	if !n.IsFinite() {
		return n
	}
	if n.dec.IsZero() {
		return Number{dec: decimal.New(0, 0)}
	}

	coeff := new(big.Int).Set(n.dec.Coefficient())
	exp := n.dec.Exponent()
	ten := big.NewInt(10)
	quo, rem := new(big.Int), new(big.Int)

	for {
		quo.QuoRem(coeff, ten, rem)
		if rem.Sign() != 0 {
			break
		}
		coeff.Set(quo)
		exp++
	}

	return Number{dec: decimal.NewFromBigInt(coeff, exp)}
}

// RoundToPlace rounds to the digit place 10^place using round-half-to-even,
// matching the decimal arithmetic of the reference implementation.
// Non-finite values are returned unchanged.
func (n Number) RoundToPlace(place int) Number {
	if !n.IsFinite() {
		return n
	}

	rounded := n.dec.RoundBank(int32(-place))
	if rounded.IsZero() {
		// Avoid carrying a negative zero out of rounding.
		rounded = rounded.Abs()
	}

	return Number{dec: rounded}
}

// ShiftPow10 multiplies by 10^k exactly. Non-finite values are returned
// unchanged.
func (n Number) ShiftPow10(k int) Number {
	if !n.IsFinite() {
		return n
	}

	return Number{dec: n.dec.Shift(int32(k))}
}

// MulPow2 multiplies by 2^k exactly. Negative powers use 2^-k = 5^k * 10^-k
// so the product stays an exact decimal. Non-finite values are returned
// unchanged.
func (n Number) MulPow2(k int) Number {
	if !n.IsFinite() {
		return n
	}

	return Number{dec: n.dec.Mul(pow2(k).dec)}
}

// FixedString renders |places| >= 0 fractional digits without further
// rounding; the caller is expected to have rounded first.
func (n Number) FixedString(places int) string {
	return n.dec.StringFixed(int32(places))
}

// String renders the exact decimal, or nan/inf/-inf.
func (n Number) String() string {
	switch n.form {
	case nan:
		return "nan"
	case posInf:
		return "inf"
	case negInf:
		return "-inf"
	default:
		return n.dec.String()
	}
}

func pow2(k int) Number {
	if k >= 0 {
		coeff := new(big.Int).Lsh(big.NewInt(1), uint(k))

		return Number{dec: decimal.NewFromBigInt(coeff, 0)}
	}

	coeff := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-k)), nil)

	return Number{dec: decimal.NewFromBigInt(coeff, int32(k))}
}
