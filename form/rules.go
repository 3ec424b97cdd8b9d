package form

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/vortex-fintech/brinput/postalcode"
	"github.com/vortex-fintech/brinput/taxid"
	"github.com/vortex-fintech/brinput/validator"
)

// Reason codes reported by the built-in rules.
const (
	ReasonRequired             = "required"
	ReasonTooLong              = "too_long"
	ReasonInvalidEmail         = "invalid_email"
	ReasonInvalidLength        = "invalid_length"
	ReasonRepeatedDigits       = "repeated_digits"
	ReasonInvalidCheckDigit    = "invalid_check_digit"
	ReasonIncompletePostalCode = "incomplete_postal_code"
	ReasonInvalidState         = "invalid_state"
)

// Format rules below pass on blank values; pair them with Required.

func Required[T any](field string, get func(T) string) Rule[T] {
	return Rule[T]{Name: "required", Field: field, Check: func(rec T) string {
		if strings.TrimSpace(get(rec)) == "" {
			return ReasonRequired
		}
		return ""
	}}
}

func MaxRunes[T any](field string, n int, get func(T) string) Rule[T] {
	return Rule[T]{Name: "max_runes", Field: field, Check: func(rec T) string {
		if utf8.RuneCountInString(strings.TrimSpace(get(rec))) > n {
			return ReasonTooLong
		}
		return ""
	}}
}

func Email[T any](field string, get func(T) string) Rule[T] {
	return Tag(field, "email", get)
}

// Tag checks the value against a validator tag, including the custom
// taxid, postalcode and uf tags. The reason is the tag's reason code.
func Tag[T any](field, tag string, get func(T) string) Rule[T] {
	return Rule[T]{Name: tag, Field: field, Check: func(rec T) string {
		v := strings.TrimSpace(get(rec))
		if v == "" {
			return ""
		}
		return validator.Var(v, tag)
	}}
}

func ValidTaxID[T any](field string, get func(T) string) Rule[T] {
	return Rule[T]{Name: "tax_id_checksum", Field: field, Check: func(rec T) string {
		v := get(rec)
		if strings.TrimSpace(v) == "" {
			return ""
		}
		return taxIDReason(taxid.Check(v))
	}}
}

func taxIDReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, taxid.ErrLength):
		return ReasonInvalidLength
	case errors.Is(err, taxid.ErrRepeatedDigits):
		return ReasonRepeatedDigits
	default:
		return ReasonInvalidCheckDigit
	}
}

func CompletePostalCode[T any](field string, get func(T) string) Rule[T] {
	return Rule[T]{Name: "postal_code_complete", Field: field, Check: func(rec T) string {
		v := get(rec)
		if strings.TrimSpace(v) == "" || postalcode.IsValid(v) {
			return ""
		}
		return ReasonIncompletePostalCode
	}}
}
