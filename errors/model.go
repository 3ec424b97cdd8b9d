// Package errors carries validation and lookup failures across transports.
// An ErrorResponse is immutable: every With* method returns a modified copy.
package errors

import (
	"encoding/json"
	"maps"
	"slices"

	"google.golang.org/grpc/codes"
)

// Domain is reported on every response built by this module.
const Domain = "brinput"

// Reason is a stable machine-readable code.
type Reason string

type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

type ErrorResponse struct {
	Code       codes.Code        `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Domain     string            `json:"domain,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func New(message string, code codes.Code, details map[string]string) ErrorResponse {
	return ErrorResponse{Code: code, Domain: Domain, Message: message, Details: cloneDetails(details)}
}

func (e ErrorResponse) WithReason(r string) ErrorResponse  { e.Reason = Reason(r); return e }
func (e ErrorResponse) WithDomain(d string) ErrorResponse  { e.Domain = d; return e }
func (e ErrorResponse) WithMessage(m string) ErrorResponse { e.Message = m; return e }

func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	return e.WithDetails(map[string]string{k: v})
}

func (e ErrorResponse) WithDetails(m map[string]string) ErrorResponse {
	if len(m) == 0 {
		return e
	}
	details := make(map[string]string, len(e.Details)+len(m))
	maps.Copy(details, e.Details)
	maps.Copy(details, m)
	e.Details = details
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) == 0 {
		return e
	}
	e.Violations = slices.Clone(v)
	return e
}

// Fields returns violations as field -> reason, keeping the first reason per field.
func (e ErrorResponse) Fields() map[string]string {
	if len(e.Violations) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		if _, ok := out[v.Field]; !ok {
			out[v.Field] = v.Reason
		}
	}
	return out
}

func (e ErrorResponse) ToString() string {
	b, _ := json.Marshal(e.wire())
	return string(b)
}

func (e ErrorResponse) Error() string { return e.ToString() }

// wireResponse renders Code by name instead of number.
type wireResponse struct {
	Code       string            `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Domain     string            `json:"domain,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func (e ErrorResponse) wire() wireResponse {
	return wireResponse{
		Code:       e.Code.String(),
		Reason:     e.Reason,
		Domain:     e.Domain,
		Message:    e.Message,
		Details:    e.Details,
		Violations: e.Violations,
	}
}

// ViolationsFromMap converts field -> reason pairs, sorted by field for stable output.
func ViolationsFromMap(m map[string]string) []FieldViolation {
	if len(m) == 0 {
		return nil
	}
	out := make([]FieldViolation, 0, len(m))
	for _, f := range slices.Sorted(maps.Keys(m)) {
		out = append(out, FieldViolation{Field: f, Reason: m[f]})
	}
	return out
}

func cloneDetails(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	return maps.Clone(in)
}
