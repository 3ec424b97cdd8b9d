package errors

import (
	"context"
	"errors"

	play "github.com/go-playground/validator/v10"
)

// ToErrorResponse converts any error into an ErrorResponse (transport-agnostic).
// Supported inputs:
//   - ErrorResponse / *ErrorResponse (passthrough)
//   - context.Canceled / context.DeadlineExceeded
//   - FieldError
//   - validator.ValidationErrors (reasons via tagToReason, may be nil)
//
// Anything else becomes Internal with reason "unexpected_error".
func ToErrorResponse(err error, tagToReason map[string]string) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}

	var er ErrorResponse
	if errors.As(err, &er) {
		return er
	}
	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	switch {
	case errors.Is(err, context.Canceled):
		return Canceled()
	case errors.Is(err, context.DeadlineExceeded):
		return DeadlineExceeded()
	}

	var fe FieldError
	if errors.As(err, &fe) {
		if fe.Field == "" {
			return InvalidArgument().WithReason(fe.Reason)
		}
		return ValidationFields(map[string]string{fe.Field: fe.Reason})
	}

	var ves play.ValidationErrors
	if errors.As(err, &ves) {
		return FromPlayground(ves, tagToReason)
	}

	return Internal().WithReason("unexpected_error")
}
