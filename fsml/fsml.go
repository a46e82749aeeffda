// Package fsml parses the format specification mini-language, a compact
// single-line string configuring number formatting, e.g. "+4.3e" or
// "0=2!2rp". The grammar is a fixed sequence of optional groups:
//
//	[fill=][sign][#][padplace][upperSep][decimalSep][lowerSep]
//	[(.|!)digits][expMode][x expVal][p][()]
//
// Parsing is total over the grammar: a string either matches end to end
// and yields a partially populated Spec, or is rejected. Absent groups
// stay nil so callers can merge the Spec over their own defaults.
package fsml

import (
	"fmt"
	"strconv"

	"github.com/sciform/sciform/errs"
	"github.com/sciform/sciform/mode"
)

// Spec holds the options captured from a format specification string.
// Nil fields were absent from the string.
type Spec struct {
	FillChar         *byte
	SignMode         *mode.SignMode
	LeftPadDecPlace  *int
	LeftPadMatching  *bool
	UpperSep         *mode.Separator
	DecimalSep       *mode.Separator
	LowerSep         *mode.Separator
	RoundMode        *mode.RoundMode
	NDigits          *int
	ExpMode          *mode.ExpMode
	Capitalize       *bool
	ExpVal           *int
	ExpFormat        *mode.ExpFormat
	ParenUncertainty *bool
}

// Parse compiles a format specification string into a Spec. It returns an
// error wrapping errs.ErrInvalidFormatSpec when the string does not match
// the grammar.
func Parse(s string) (*Spec, error) {
	p := &parser{s: s}
	spec := &Spec{}

	p.parseFill(spec)
	p.parseSign(spec)
	alternate := p.accept('#')
	p.parsePad(spec)
	p.parseSeparators(spec)
	if err := p.parseRound(spec); err != nil {
		return nil, err
	}
	p.parseExpMode(spec, alternate)
	if err := p.parseExpVal(spec); err != nil {
		return nil, err
	}
	if p.accept('p') {
		f := mode.ExpPrefix
		spec.ExpFormat = &f
	}
	if p.accept('(') {
		if !p.accept(')') {
			return nil, fmt.Errorf("%w: %q", errs.ErrInvalidFormatSpec, s)
		}
		t := true
		spec.ParenUncertainty = &t
	}

	if p.pos != len(p.s) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidFormatSpec, s)
	}

	return spec, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) peek(off int) (byte, bool) {
	if p.pos+off >= len(p.s) {
		return 0, false
	}

	return p.s[p.pos+off], true
}

func (p *parser) accept(c byte) bool {
	if b, ok := p.peek(0); ok && b == c {
		p.pos++
		return true
	}

	return false
}

func (p *parser) parseFill(spec *Spec) {
	c, ok := p.peek(0)
	if !ok || (c != ' ' && c != '0') {
		return
	}
	if eq, ok := p.peek(1); !ok || eq != '=' {
		return
	}

	fill := c
	spec.FillChar = &fill
	p.pos += 2
}

func (p *parser) parseSign(spec *Spec) {
	c, ok := p.peek(0)
	if !ok {
		return
	}

	var sm mode.SignMode
	switch c {
	case '-':
		sm = mode.SignNegative
	case '+':
		sm = mode.SignAlways
	case ' ':
		sm = mode.SignSpace
	default:
		return
	}

	spec.SignMode = &sm
	p.pos++
}

func (p *parser) parsePad(spec *Spec) {
	digits := p.digits()
	if digits == "" {
		return
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		// Overflowing digit run; saturate and let validation reject it.
		n = int(^uint(0) >> 1)
	}
	t := true
	spec.LeftPadDecPlace = &n
	spec.LeftPadMatching = &t
}

// parseSeparators fills the upper, decimal and lower separator slots. A
// '.' in a separator slot starts the rounding group instead when it is
// followed by an optionally signed digit, matching the way ambiguous
// adjacent groups resolve in the anchored grammar.
func (p *parser) parseSeparators(spec *Spec) {
	if c, ok := p.peek(0); ok && !p.roundAhead() {
		var sep mode.Separator
		switch c {
		case 'n':
			sep = mode.SepNone
		case ',':
			sep = mode.SepComma
		case '.':
			sep = mode.SepPoint
		case 's':
			sep = mode.SepSpace
		case '_':
			sep = mode.SepUnderscore
		default:
			goto decimal
		}
		spec.UpperSep = &sep
		p.pos++
	}

decimal:
	if c, ok := p.peek(0); ok && !p.roundAhead() {
		var sep mode.Separator
		switch c {
		case '.':
			sep = mode.SepPoint
		case ',':
			sep = mode.SepComma
		default:
			goto lower
		}
		spec.DecimalSep = &sep
		p.pos++
	}

lower:
	if c, ok := p.peek(0); ok {
		var sep mode.Separator
		switch c {
		case 'n':
			sep = mode.SepNone
		case 's':
			sep = mode.SepSpace
		case '_':
			sep = mode.SepUnderscore
		default:
			return
		}
		spec.LowerSep = &sep
		p.pos++
	}
}

// roundAhead reports whether the current position starts the rounding
// group: '.' or '!' followed by an optionally signed digit.
func (p *parser) roundAhead() bool {
	c, ok := p.peek(0)
	if !ok || (c != '.' && c != '!') {
		return false
	}

	next, ok := p.peek(1)
	if !ok {
		return false
	}
	if next == '+' || next == '-' {
		next, ok = p.peek(2)
		if !ok {
			return false
		}
	}

	return isDigit(next)
}

func (p *parser) parseRound(spec *Spec) error {
	if !p.roundAhead() {
		return nil
	}

	var rm mode.RoundMode
	switch p.s[p.pos] {
	case '!':
		rm = mode.SigFig
	case '.':
		rm = mode.DecPlace
	}
	p.pos++

	n, err := p.signedInt()
	if err != nil {
		return fmt.Errorf("%w: %q", errs.ErrInvalidFormatSpec, p.s)
	}

	spec.RoundMode = &rm
	spec.NDigits = &n

	return nil
}

func (p *parser) parseExpMode(spec *Spec, alternate bool) {
	c, ok := p.peek(0)
	if !ok {
		return
	}

	var em mode.ExpMode
	capitalize := c >= 'A' && c <= 'Z'
	switch c {
	case 'f', 'F':
		em = mode.FixedPoint
	case '%':
		em = mode.Percent
	case 'e', 'E':
		em = mode.Scientific
	case 'r', 'R':
		em = mode.Engineering
		if alternate {
			em = mode.EngineeringShifted
		}
	case 'b', 'B':
		em = mode.Binary
		if alternate {
			em = mode.BinaryIEC
		}
	default:
		return
	}

	spec.ExpMode = &em
	spec.Capitalize = &capitalize
	p.pos++
}

func (p *parser) parseExpVal(spec *Spec) error {
	if !p.accept('x') {
		return nil
	}

	n, err := p.signedInt()
	if err != nil {
		return fmt.Errorf("%w: %q", errs.ErrInvalidFormatSpec, p.s)
	}
	spec.ExpVal = &n

	return nil
}

func (p *parser) signedInt() (int, error) {
	start := p.pos
	if c, ok := p.peek(0); ok && (c == '+' || c == '-') {
		p.pos++
	}
	if p.digits() == "" {
		return 0, errs.ErrInvalidFormatSpec
	}

	return strconv.Atoi(p.s[start:p.pos])
}

func (p *parser) digits() string {
	start := p.pos
	for {
		c, ok := p.peek(0)
		if !ok || !isDigit(c) {
			break
		}
		p.pos++
	}

	return p.s[start:p.pos]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
