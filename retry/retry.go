package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultMaxAttempts     = 3
	defaultInitialInterval = 100 * time.Millisecond
	defaultMaxInterval     = time.Second
	defaultMultiplier      = 2.0
	defaultRandomization   = 0.2
)

// Policy bounds a retry loop. Zero fields take defaults; MaxAttempts counts
// the first call.
type Policy struct {
	MaxAttempts     uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultPolicy is tuned for short interactive lookups.
func DefaultPolicy() Policy {
	return Policy{}.normalize()
}

// NoRetry calls the function exactly once.
func NoRetry() Policy {
	return Policy{MaxAttempts: 1}
}

func (p Policy) normalize() Policy {
	if p.MaxAttempts == 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.InitialInterval <= 0 {
		p.InitialInterval = defaultInitialInterval
	}
	if p.MaxInterval < p.InitialInterval {
		p.MaxInterval = max(defaultMaxInterval, p.InitialInterval)
	}
	return p
}

// PermanentError wraps a non-retryable error.
type PermanentError struct {
	err error
}

func (e PermanentError) Error() string {
	if e.err == nil {
		return "permanent error"
	}
	return e.err.Error()
}

func (e PermanentError) Unwrap() error { return e.err }

// Permanent marks an error as non-retryable.
func Permanent(err error) error {
	if err == nil || IsPermanent(err) {
		return err
	}
	return PermanentError{err: err}
}

// IsPermanent reports whether err is marked as non-retryable.
func IsPermanent(err error) bool {
	var pe PermanentError
	if errors.As(err, &pe) {
		return true
	}
	var bpe *backoff.PermanentError
	return errors.As(err, &bpe)
}

// Do calls fn until it succeeds, returns a permanent error, the policy is
// exhausted or ctx is done. The last error from fn is returned.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	p = p.normalize()

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialInterval
	exp.MaxInterval = p.MaxInterval
	exp.Multiplier = defaultMultiplier
	exp.RandomizationFactor = defaultRandomization
	exp.Reset()

	op := func() (struct{}, error) {
		if err := ctx.Err(); err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		err := fn(ctx)
		if err != nil && IsPermanent(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(exp),
		backoff.WithMaxTries(p.MaxAttempts),
	}
	if p.MaxElapsedTime > 0 {
		opts = append(opts, backoff.WithMaxElapsedTime(p.MaxElapsedTime))
	}

	_, err := backoff.Retry(ctx, op, opts...)
	return err
}
