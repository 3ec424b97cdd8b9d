// Package digits extracts the canonical digit sequence from free-form input.
// Only ASCII '0'-'9' count as digits; everything else, including non-ASCII
// Unicode digits, is dropped.
package digits

import "strings"

// Only returns s with every non-digit character removed.
//
//	"111.444.777-35" -> "11144477735"
//	"01310-930"      -> "01310930"
//	"abc"            -> ""
func Only(s string) string {
	return Take(s, len(s))
}

// Take returns at most the first n digits of s, ignoring non-digits.
// It returns "" when n <= 0.
func Take(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(min(n, len(s)))
	for i := 0; i < len(s) && b.Len() < n; i++ {
		if IsDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// AllSame reports whether d is non-empty and made of a single repeated byte.
func AllSame(d string) bool {
	if d == "" {
		return false
	}
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
