package errors

import (
	"fmt"
	"strings"

	play "github.com/go-playground/validator/v10"
)

// FromPlayground adapts go-playground/validator errors to InvalidArgument + Violations.
// Field paths drop the root type name: "Registration.Address.City" -> "Address.City".
func FromPlayground(errs play.ValidationErrors, tagToReason map[string]string) ErrorResponse {
	violations := make([]FieldViolation, 0, len(errs))
	for _, fe := range errs {
		tag := fe.Tag()
		reason := tagToReason[tag]
		if reason == "" {
			reason = "invalid"
		}

		field := fe.Field()
		if ns := fe.StructNamespace(); ns != "" {
			if i := strings.IndexByte(ns, '.'); i >= 0 && i+1 < len(ns) {
				field = ns[i+1:]
			}
		}

		violations = append(violations, FieldViolation{
			Field:       field,
			Reason:      reason,
			Description: fmt.Sprintf("%s validation failed (%s)", field, tag),
		})
	}
	return ValidationViolations(violations)
}
