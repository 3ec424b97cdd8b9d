// Package logutil prepares user input for logging.
package logutil

import (
	"regexp"
	"strings"

	"github.com/vortex-fintech/brinput/taxid"
)

const Redacted = "[REDACTED]"

var sensitiveRe = regexp.MustCompile(`(?i)(password|pass|secret|token|otp)`)

// maskers keep part of a value recognizable. Keys are lower-case.
var maskers = map[string]func(string) string{
	"tax_id": taxid.Redact,
	"email":  MaskEmail,
	"name":   maskKeepFirst,
}

// SanitizeInput returns a copy of field -> raw value safe for production logs.
// Known personal fields are partially masked, secret-looking keys and
// extraKeys are replaced with Redacted. In development and debug the input is
// returned unchanged.
func SanitizeInput(fields map[string]string, env string, extraKeys ...string) map[string]string {
	if fields == nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "debug":
		return fields
	}

	extra := make(map[string]struct{}, len(extraKeys))
	for _, k := range extraKeys {
		extra[strings.ToLower(k)] = struct{}{}
	}

	out := make(map[string]string, len(fields))
	for k, v := range fields {
		lk := strings.ToLower(k)
		if _, ok := extra[lk]; ok || sensitiveRe.MatchString(lk) {
			out[k] = Redacted
			continue
		}
		if mask, ok := maskers[lk]; ok {
			out[k] = mask(v)
			continue
		}
		out[k] = v
	}
	return out
}

// MaskEmail keeps the first character of the local part and the domain:
// "maria@example.com" -> "m****@example.com".
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return maskKeepFirst(email)
	}
	return maskKeepFirst(email[:at]) + email[at:]
}

func maskKeepFirst(s string) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= 1 {
		return string(runes)
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}
