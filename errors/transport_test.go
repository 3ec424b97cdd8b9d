package errors

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[codes.Code]int{
		codes.InvalidArgument:  400,
		codes.OutOfRange:       400,
		codes.Canceled:         499,
		codes.DeadlineExceeded: 504,
		codes.NotFound:         404,
		codes.Unavailable:      503,
		codes.Unimplemented:    501,
		codes.Internal:         500,
		codes.OK:               500,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code %v", code)
	}
}

func TestToHTTPWritesBody(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationFields(map[string]string{"tax_id": "invalid_check_digit"}).ToHTTP(rec)

	require.Equal(t, 400, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body struct {
		Code       string           `json:"code"`
		Domain     string           `json:"domain"`
		Violations []FieldViolation `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "InvalidArgument", body.Code)
	assert.Equal(t, Domain, body.Domain)
	require.Len(t, body.Violations, 1)
	assert.Equal(t, "tax_id", body.Violations[0].Field)
}

func TestGRPCRoundTrip(t *testing.T) {
	in := ValidationViolations([]FieldViolation{
		{Field: "tax_id", Reason: "invalid_check_digit", Description: "tax id check digit mismatch"},
		{Field: "postal_code", Reason: "incomplete_postal_code"},
	}).WithDetail("form", "registration")

	err := in.ToGRPC()
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	var hasInfo, hasBadRequest bool
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			hasInfo = true
			assert.Equal(t, "validation_failed", x.GetReason())
			assert.Equal(t, Domain, x.GetDomain())
		case *errdetails.BadRequest:
			hasBadRequest = true
			require.Len(t, x.GetFieldViolations(), 2)
			assert.Equal(t, "incomplete_postal_code", x.GetFieldViolations()[1].GetDescription())
		}
	}
	assert.True(t, hasInfo)
	assert.True(t, hasBadRequest)

	back := FromGRPC(err)
	assert.Equal(t, in.Code, back.Code)
	assert.Equal(t, in.Reason, back.Reason)
	assert.Equal(t, in.Domain, back.Domain)
	assert.Equal(t, map[string]string{"form": "registration"}, back.Details)
	assert.Equal(t, in.Fields(), back.Fields())
}

func TestFromGRPCNonStatus(t *testing.T) {
	got := FromGRPC(errors.New("plain"))
	assert.Equal(t, codes.Unknown, got.Code)
}

func TestToGRPCWithoutViolationsSkipsBadRequest(t *testing.T) {
	st, _ := status.FromError(NotFound().ToGRPC())
	for _, d := range st.Details() {
		if _, ok := d.(*errdetails.BadRequest); ok {
			t.Fatalf("unexpected BadRequest detail for NotFound")
		}
	}
}
