package profile

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParsePercent reads the leading decimal number of a display string, the way
// a browser's parseFloat does: leading whitespace is skipped, trailing text
// such as "%" or " mil" is ignored. ok is false when no number is present.
func ParsePercent(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := numericPrefix(s)
	for end > 0 {
		v, err := strconv.ParseFloat(s[:end], 64)
		if err == nil {
			return v, true
		}
		end--
	}
	return math.NaN(), false
}

// numericPrefix returns the length of the longest prefix made of a sign,
// digits, one decimal point and an exponent.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	seenDot, seenExp := false, false
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && !seenExp && i > 0:
			seenExp = true
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
			}
		default:
			return i
		}
		i++
	}
	return i
}

// BarWidth converts a percent display string into a bar width in [0,100].
// Unparseable text yields a zero-width bar.
func BarWidth(s string) float64 {
	v, ok := ParsePercent(s)
	if !ok || math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
