package form

import (
	"strings"

	"github.com/vortex-fintech/brinput/address"
	"github.com/vortex-fintech/brinput/digits"
	"github.com/vortex-fintech/brinput/postalcode"
	"github.com/vortex-fintech/brinput/taxid"
)

const maxNameRunes = 120

type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	TaxID        string `json:"tax_id"`
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

var _ address.Target = (*Registration)(nil)

func (r *Registration) PostalCodeValue() string { return r.PostalCode }

// ApplyAddress overwrites the fields an address lookup knows about.
// Number is user-owned and left alone.
func (r *Registration) ApplyAddress(a address.Address) {
	r.Street = a.Street
	r.Complement = a.Complement
	r.Neighborhood = a.Neighborhood
	r.City = a.City
	r.State = a.State
}

// Normalize trims every field, lowercases the e-mail, upper-cases the state
// and masks the tax ID and postal code. A tax ID or postal code with more
// digits than it can hold is only trimmed, so validation still rejects it.
func (r Registration) Normalize() Registration {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.TaxID = maskWithin(r.TaxID, taxid.Length, taxid.Mask)
	r.PostalCode = maskWithin(r.PostalCode, postalcode.Length, postalcode.Mask)
	r.Street = strings.TrimSpace(r.Street)
	r.Number = strings.TrimSpace(r.Number)
	r.Complement = strings.TrimSpace(r.Complement)
	r.Neighborhood = strings.TrimSpace(r.Neighborhood)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
	return r
}

func maskWithin(raw string, n int, mask func(string) string) string {
	if len(digits.Only(raw)) > n {
		return strings.TrimSpace(raw)
	}
	return mask(raw)
}

// Values returns the non-blank fields keyed by their JSON names.
func (r Registration) Values() map[string]string {
	out := map[string]string{}
	for k, v := range map[string]string{
		"name": r.Name, "email": r.Email, "tax_id": r.TaxID, "postal_code": r.PostalCode,
		"street": r.Street, "number": r.Number, "complement": r.Complement,
		"neighborhood": r.Neighborhood, "city": r.City, "state": r.State,
	} {
		if strings.TrimSpace(v) != "" {
			out[k] = v
		}
	}
	return out
}

// RegistrationPipeline returns the default rule set for Registration.
func RegistrationPipeline() *Pipeline[Registration] {
	name := func(r Registration) string { return r.Name }
	email := func(r Registration) string { return r.Email }
	taxID := func(r Registration) string { return r.TaxID }
	postal := func(r Registration) string { return r.PostalCode }
	state := func(r Registration) string { return r.State }

	return NewPipeline(
		Required("name", name),
		MaxRunes("name", maxNameRunes, name),
		Required("email", email),
		Email("email", email),
		Required("tax_id", taxID),
		ValidTaxID("tax_id", taxID),
		Required("postal_code", postal),
		CompletePostalCode("postal_code", postal),
		Tag("state", "uf", state),
	)
}
