package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/brinput/postalcode"
	"github.com/vortex-fintech/brinput/taxid"
)

var v *validator.Validate

func init() {
	v = validator.New()
	mustRegister("taxid", func(fl validator.FieldLevel) bool {
		return taxid.IsValid(fl.Field().String())
	})
	mustRegister("postalcode", func(fl validator.FieldLevel) bool {
		return postalcode.IsValid(fl.Field().String())
	})
	mustRegister("uf", func(fl validator.FieldLevel) bool {
		return IsStateCode(fl.Field().String())
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Var checks a single value against tag and returns its reason code, or "" when valid.
func Var(value any, tag string) string {
	if err := v.Var(value, tag); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return mapTagToCode(errs[0].Tag())
		}
		return "invalid"
	}
	return ""
}
