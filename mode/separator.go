package mode

// Separator is a digit-grouping or decimal-point character. The empty
// separator disables grouping at its position.
type Separator string

const (
	SepNone       Separator = ""
	SepComma      Separator = ","
	SepPoint      Separator = "."
	SepSpace      Separator = " "
	SepUnderscore Separator = "_"
)

// Separators lists every grouping character, used when stripping
// separators out of a parenthetical uncertainty.
var Separators = []Separator{SepComma, SepPoint, SepSpace, SepUnderscore}

// ValidUpperSeparator reports whether s may group digits above the decimal
// point.
func ValidUpperSeparator(s Separator) bool {
	switch s {
	case SepNone, SepComma, SepPoint, SepSpace, SepUnderscore:
		return true
	default:
		return false
	}
}

// ValidDecimalSeparator reports whether s may act as the decimal point.
func ValidDecimalSeparator(s Separator) bool {
	switch s {
	case SepPoint, SepComma:
		return true
	default:
		return false
	}
}

// ValidLowerSeparator reports whether s may group digits below the decimal
// point.
func ValidLowerSeparator(s Separator) bool {
	switch s {
	case SepNone, SepSpace, SepUnderscore:
		return true
	default:
		return false
	}
}
