// Package atoi converts option values to integers the forgiving way: whatever leading number
// can be read is used, and anything else becomes zero.
package atoi

import (
	"math"
	"strconv"
)

// Parse reads an optional run of leading whitespace, an optional sign and the longest run of
// decimal digits that follows. Trailing text is ignored. Input without any digits yields 0, and
// values outside the int range are clamped to math.MinInt or math.MaxInt.
//
//	Parse("42")     // 42
//	Parse("  -7px") // -7
//	Parse("abc")    // 0
func Parse(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[start:i], 10, strconv.IntSize)
	if err != nil {
		// Only range errors are possible here; ParseInt already returns the clamped bound.
		if s[start] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	return int(n)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
