package validator

var tagMap = map[string]string{
	"required":   "required",
	"omitempty":  "optional",
	"email":      "invalid_email",
	"e164":       "invalid_phone",
	"max":        "too_long",
	"min":        "too_short",
	"len":        "invalid_length",
	"oneof":      "invalid_choice",
	"numeric":    "only_numbers_allowed",
	"alpha":      "only_letters_allowed",
	"taxid":      "invalid_tax_id",
	"postalcode": "invalid_postal_code",
	"uf":         "invalid_state",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
