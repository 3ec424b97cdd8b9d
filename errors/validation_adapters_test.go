package errors

import (
	"testing"

	play "github.com/go-playground/validator/v10"
)

type nestedReq struct {
	Address struct {
		City string `validate:"required"`
	}
	TaxID string `validate:"required,numeric"`
}

func TestFromPlaygroundNestedPath(t *testing.T) {
	err := play.New().Struct(nestedReq{TaxID: "abc"})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	resp := FromPlayground(err.(play.ValidationErrors), map[string]string{"required": "required"})
	if resp.Reason != "validation_failed" {
		t.Fatalf("unexpected reason %q", resp.Reason)
	}

	got := resp.Fields()
	if got["Address.City"] != "required" {
		t.Fatalf("expected nested path Address.City, got %+v", resp.Violations)
	}
	// Unmapped tags fall back to "invalid".
	if got["TaxID"] != "invalid" {
		t.Fatalf("expected fallback reason for TaxID, got %+v", resp.Violations)
	}
	for _, v := range resp.Violations {
		if v.Description == "" {
			t.Fatalf("expected description for %s", v.Field)
		}
	}
}
