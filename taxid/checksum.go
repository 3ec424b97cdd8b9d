package taxid

import (
	"errors"

	"github.com/vortex-fintech/brinput/digits"
)

var (
	ErrLength         = errors.New("taxid: invalid length")
	ErrRepeatedDigits = errors.New("taxid: repeated digits")
	ErrCheckDigit     = errors.New("taxid: check digit mismatch")
)

// IsValid reports whether raw is a structurally valid tax ID.
// Masked and unmasked input validate identically.
func IsValid(raw string) bool {
	return Check(raw) == nil
}

// Check validates raw and returns the first rule it breaks:
// ErrLength, ErrRepeatedDigits or ErrCheckDigit. It returns nil for a valid tax ID.
func Check(raw string) error {
	d := digits.Only(raw)
	if len(d) != Length {
		return ErrLength
	}
	// All-same sequences satisfy the arithmetic but are never issued.
	if digits.AllSame(d) {
		return ErrRepeatedDigits
	}

	first := checkDigit(d[:baseLength])
	if d[baseLength] != first {
		return ErrCheckDigit
	}
	if d[baseLength+1] != checkDigit(d[:baseLength+1]) {
		return ErrCheckDigit
	}
	return nil
}

// CheckDigits returns the two check digits for the first 9 digits of a tax ID.
// Non-digits in base are ignored; ErrLength is returned unless exactly 9 remain.
func CheckDigits(base string) (string, error) {
	d := digits.Only(base)
	if len(d) != baseLength {
		return "", ErrLength
	}
	first := checkDigit(d)
	second := checkDigit(d + string(first))
	return string([]byte{first, second}), nil
}

// checkDigit weights the digits of d from len(d)+1 down to 2, reduces the sum
// modulo 11 and maps remainders 0 and 1 to '0'.
func checkDigit(d string) byte {
	sum := 0
	weight := len(d) + 1
	for i := 0; i < len(d); i++ {
		sum += int(d[i]-'0') * weight
		weight--
	}

	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}
