package render

import (
	"strings"

	"github.com/sciform/sciform/mode"
)

const groupSize = 3

// addSeparators inserts the upper-group separator every three digits left
// of the decimal point (scanning right to left), the lower-group separator
// every three digits right of it (scanning left to right), and replaces
// the point itself with the decimal separator. Sign and padding characters
// in front of the digits are left untouched.
func addSeparators(s string, upper, decimal, lower mode.Separator) string {
	point := strings.IndexByte(s, '.')
	intEnd := point
	if intEnd < 0 {
		intEnd = len(s)
	}

	intStart := intEnd
	for intStart > 0 && isDigit(s[intStart-1]) {
		intStart--
	}

	var b strings.Builder
	b.WriteString(s[:intStart])

	intDigits := s[intStart:intEnd]
	for i := 0; i < len(intDigits); i++ {
		if i > 0 && (len(intDigits)-i)%groupSize == 0 {
			b.WriteString(string(upper))
		}
		b.WriteByte(intDigits[i])
	}

	if point >= 0 {
		b.WriteString(string(decimal))
		frac := s[point+1:]
		for i := 0; i < len(frac); i++ {
			if i > 0 && i%groupSize == 0 {
				b.WriteString(string(lower))
			}
			b.WriteByte(frac[i])
		}
	}

	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
