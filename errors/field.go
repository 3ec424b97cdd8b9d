package errors

// FieldError is a single-field rejection. It is comparable, so package-level
// FieldError values work as sentinels with errors.Is.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// Invalid returns a FieldError for field with a machine-readable reason.
func Invalid(field, reason string) error {
	return FieldError{Field: field, Reason: reason}
}
