// Package address fills address fields from a postal code lookup.
//
// Lookups are keyed by the postal code digit sequence. A failed lookup never
// touches the target: callers keep whatever the user already typed.
package address

import (
	"context"
	"errors"

	apperrors "github.com/vortex-fintech/brinput/errors"
)

var (
	ErrNotFound          = errors.New("address: postal code not found")
	ErrInvalidPostalCode = apperrors.Invalid("postal_code", "incomplete_postal_code")
)

type Address struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
}

// Provider resolves an 8-digit postal code. Implementations return
// ErrNotFound when the code does not exist; any other error is retried.
type Provider interface {
	Lookup(ctx context.Context, postalDigits string) (Address, error)
}

// Target is the form state an Autofiller writes into.
type Target interface {
	PostalCodeValue() string
	ApplyAddress(Address)
}

// ToErrorResponse maps lookup errors onto transport responses.
func ToErrorResponse(err error) apperrors.ErrorResponse {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperrors.NotFound().WithReason("postal_code_not_found")
	case errors.Is(err, ErrInvalidPostalCode):
		return apperrors.ToErrorResponse(ErrInvalidPostalCode, nil)
	case errors.Is(err, errUpstream):
		return apperrors.Unavailable().WithReason("address_provider_unavailable")
	}
	return apperrors.ToErrorResponse(err, nil)
}
