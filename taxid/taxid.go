// Package taxid masks and validates Brazilian individual taxpayer IDs (CPF).
//
// A tax ID is 11 digits, displayed as NNN.NNN.NNN-NN. The last two digits are
// modulo-11 check digits computed from the preceding ones.
package taxid

import (
	"strings"

	"github.com/vortex-fintech/brinput/digits"
)

const (
	// Length is the number of digits in a tax ID.
	Length = 11
	// MaskedLength is the length of a complete masked tax ID, NNN.NNN.NNN-NN.
	MaskedLength = Length + 3

	baseLength = 9
)

// Mask reformats partially typed input into the NNN.NNN.NNN-NN display form.
// Non-digits are dropped and the result is capped at 11 digits. Separators
// are placed in one pass over the digit sequence: a dot before the 4th and
// 7th digit and a hyphen before the 10th, each only once that digit exists.
//
//	"11144477735"      -> "111.444.777-35"
//	"111"              -> "111"
//	"1114"             -> "111.4"
//	"1114447"          -> "111.444.7"
//	"1114447773"       -> "111.444.777-3"
//	"111.444.777-3599" -> "111.444.777-35"
func Mask(raw string) string {
	d := Digits(raw)

	var b strings.Builder
	b.Grow(MaskedLength)
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// Digits returns the digit sequence of raw capped at 11 digits.
func Digits(raw string) string {
	return digits.Take(raw, Length)
}

// Redact renders a tax ID for logs. It masks the input and then hides every
// digit except the last 4 (or the last 1 when there are 4 digits or fewer).
//
//	"11144477735" -> "***.***.*77-35"
//	"1114"        -> "***.4"
//	""            -> ""
func Redact(raw string) string {
	masked := []byte(Mask(raw))
	if len(masked) == 0 {
		return ""
	}

	total := 0
	for _, c := range masked {
		if digits.IsDigit(c) {
			total++
		}
	}

	keep := 4
	if total <= 4 {
		keep = 1
	}

	seen := 0
	for i := len(masked) - 1; i >= 0; i-- {
		if digits.IsDigit(masked[i]) {
			seen++
			if seen > keep {
				masked[i] = '*'
			}
		}
	}
	return string(masked)
}
