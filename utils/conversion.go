package utils

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingInt reads an optional sign followed by decimal digits from the
// start of s, after skipping leading whitespace, and ignores whatever follows.
// "120$" parses to 120 and "  -7.9" to -7. It reports false when s does not
// start with a number.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Out of range for int64; clamp like a saturating parse.
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return int(n), true
}

// TruncateFloat converts f to an int, dropping the fractional part.
// NaN and infinities report false.
func TruncateFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Trunc(f)), true
}
