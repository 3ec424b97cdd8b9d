// Package postalcode normalizes Brazilian postal codes (CEP) for display.
package postalcode

import (
	"strings"

	"github.com/vortex-fintech/brinput/digits"
)

const (
	// Length is the number of digits in a complete postal code.
	Length = 8
	// MaskedLength is the length of a complete masked postal code, NNNNN-NNN.
	MaskedLength = Length + 1

	hyphenAfter = 5
)

// Mask reformats partially typed input into the NNNNN-NNN display form.
// Non-digits are dropped, the result is capped at 8 digits, and the hyphen
// only appears once the 6th digit is present.
//
//	"01310930"   -> "01310-930"
//	"0131"       -> "0131"
//	"013109"     -> "01310-9"
//	"01310-9301" -> "01310-930"
//	"abc"        -> ""
func Mask(raw string) string {
	d := Digits(raw)
	if len(d) <= hyphenAfter {
		return d
	}

	var b strings.Builder
	b.Grow(MaskedLength)
	b.WriteString(d[:hyphenAfter])
	b.WriteByte('-')
	b.WriteString(d[hyphenAfter:])
	return b.String()
}

// Digits returns the digit sequence of raw capped at 8 digits.
// It is the key used for address lookups.
func Digits(raw string) string {
	return digits.Take(raw, Length)
}

// IsValid reports whether raw holds exactly 8 digits, ignoring separators.
// Unlike IsComplete it rejects input with extra digits.
func IsValid(raw string) bool {
	return len(digits.Only(raw)) == Length
}

// IsComplete reports whether raw carries all 8 postal code digits.
func IsComplete(raw string) bool {
	return len(Digits(raw)) == Length
}
