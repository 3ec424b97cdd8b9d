// Package form validates typed records through an explicit pipeline of named
// rules and keeps masked field state for keystroke-driven input.
package form

import (
	"fmt"

	apperrors "github.com/vortex-fintech/brinput/errors"
)

// Rule is a named predicate over a record. Check returns "" on pass or a
// machine-readable reason code on failure.
type Rule[T any] struct {
	Name  string
	Field string
	Check func(T) string
}

type Failure struct {
	Field  string `json:"field"`
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

// Pipeline runs rules in insertion order. Once a field has failed, the
// remaining rules for that field are skipped; other fields still run.
type Pipeline[T any] struct {
	rules []Rule[T]
}

func NewPipeline[T any](rules ...Rule[T]) *Pipeline[T] {
	return (&Pipeline[T]{}).Add(rules...)
}

func (p *Pipeline[T]) Add(rules ...Rule[T]) *Pipeline[T] {
	for _, r := range rules {
		if r.Check == nil {
			panic(fmt.Sprintf("form: rule %q for field %q has no check", r.Name, r.Field))
		}
		p.rules = append(p.rules, r)
	}
	return p
}

func (p *Pipeline[T]) Run(rec T) Result {
	var res Result
	failed := map[string]bool{}
	for _, r := range p.rules {
		if failed[r.Field] {
			continue
		}
		if reason := r.Check(rec); reason != "" {
			failed[r.Field] = true
			res.Failures = append(res.Failures, Failure{Field: r.Field, Rule: r.Name, Reason: reason})
		}
	}
	return res
}

type Result struct {
	Failures []Failure
}

func (r Result) OK() bool { return len(r.Failures) == 0 }

// Fields returns field -> reason for every failed field.
func (r Result) Fields() map[string]string {
	if r.OK() {
		return nil
	}
	out := make(map[string]string, len(r.Failures))
	for _, f := range r.Failures {
		out[f.Field] = f.Reason
	}
	return out
}

// Err returns nil when every rule passed, otherwise an errors.ErrorResponse
// with one violation per failed field in rule order.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	vs := make([]apperrors.FieldViolation, 0, len(r.Failures))
	for _, f := range r.Failures {
		vs = append(vs, apperrors.FieldViolation{
			Field:       f.Field,
			Reason:      f.Reason,
			Description: fmt.Sprintf("%s failed rule %s", f.Field, f.Rule),
		})
	}
	return apperrors.ValidationViolations(vs)
}
