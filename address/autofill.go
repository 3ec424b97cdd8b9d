package address

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vortex-fintech/brinput/logger"
	"github.com/vortex-fintech/brinput/postalcode"
	"github.com/vortex-fintech/brinput/retry"
	"github.com/vortex-fintech/brinput/timeutil"
)

type Autofiller struct {
	provider Provider
	cache    Cache
	log      logger.Interface
	metrics  *Metrics
	policy   retry.Policy
	clock    timeutil.Clock
	timeout  time.Duration
	inflight singleflight.Group
}

// DefaultLookupTimeout bounds a shared provider call, retries included.
const DefaultLookupTimeout = 10 * time.Second

type Option func(*Autofiller)

func WithCache(c Cache) Option             { return func(a *Autofiller) { a.cache = c } }
func WithLogger(l logger.Interface) Option { return func(a *Autofiller) { a.log = l } }
func WithMetrics(m *Metrics) Option        { return func(a *Autofiller) { a.metrics = m } }
func WithRetry(p retry.Policy) Option      { return func(a *Autofiller) { a.policy = p } }
func WithClock(c timeutil.Clock) Option    { return func(a *Autofiller) { a.clock = c } }

// WithLookupTimeout bounds the provider call shared by concurrent lookups.
func WithLookupTimeout(d time.Duration) Option { return func(a *Autofiller) { a.timeout = d } }

func NewAutofiller(p Provider, opts ...Option) *Autofiller {
	a := &Autofiller{
		provider: p,
		log:      logger.Nop(),
		policy:   retry.DefaultPolicy(),
		clock:    timeutil.Default,
		timeout:  DefaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.Nop()
	}
	if a.clock == nil {
		a.clock = timeutil.Default
	}
	if a.timeout <= 0 {
		a.timeout = DefaultLookupTimeout
	}
	return a
}

// Lookup resolves the first 8 digits of raw. It returns ErrInvalidPostalCode
// when fewer than 8 digits are present and ErrNotFound when the code does not
// exist. Cache failures are logged and treated as misses.
//
// Concurrent lookups of the same code share one provider call. The call keeps
// the first caller's values but not its cancellation, and is bounded by the
// lookup timeout instead. Each caller stops waiting when its own ctx is done.
func (a *Autofiller) Lookup(ctx context.Context, raw string) (Address, error) {
	if !postalcode.IsComplete(raw) {
		a.metrics.inc(sourceInput, resultInvalid)
		return Address{}, ErrInvalidPostalCode
	}
	if err := ctx.Err(); err != nil {
		return Address{}, err
	}
	key := postalcode.Digits(raw)

	if addr, ok := a.fromCache(ctx, key); ok {
		return addr, nil
	}

	ch := a.inflight.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()
		return a.fetch(fctx, key)
	})
	select {
	case <-ctx.Done():
		return Address{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Address{}, res.Err
		}
		return res.Val.(Address), nil
	}
}

func (a *Autofiller) fetch(ctx context.Context, key string) (Address, error) {
	var addr Address
	start := a.clock.Now()
	err := retry.Do(ctx, a.policy, func(ctx context.Context) error {
		got, err := a.provider.Lookup(ctx, key)
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidPostalCode) {
				return retry.Permanent(err)
			}
			a.log.DebugwCtx(ctx, "postal code lookup attempt failed", "postal_code", key, "error", err)
			return err
		}
		addr = got
		return nil
	})
	a.metrics.observe(a.clock.Since(start))

	if err != nil {
		var pe retry.PermanentError
		if errors.As(err, &pe) && pe.Unwrap() != nil {
			err = pe.Unwrap()
		}
		if errors.Is(err, ErrNotFound) {
			a.metrics.inc(sourceProvider, resultNotFound)
		} else {
			a.metrics.inc(sourceProvider, resultError)
		}
		return Address{}, err
	}
	a.metrics.inc(sourceProvider, resultOK)

	if addr.PostalCode == "" {
		addr.PostalCode = postalcode.Mask(key)
	}
	if a.cache != nil {
		if err := a.cache.Set(ctx, key, addr); err != nil {
			a.log.WarnwCtx(ctx, "postal code cache write failed", "postal_code", key, "error", err)
		}
	}
	return addr, nil
}

func (a *Autofiller) fromCache(ctx context.Context, key string) (Address, bool) {
	if a.cache == nil {
		return Address{}, false
	}
	addr, ok, err := a.cache.Get(ctx, key)
	switch {
	case err != nil:
		a.metrics.inc(sourceCache, resultError)
		a.log.WarnwCtx(ctx, "postal code cache read failed", "postal_code", key, "error", err)
		return Address{}, false
	case !ok:
		a.metrics.inc(sourceCache, resultMiss)
		return Address{}, false
	}
	a.metrics.inc(sourceCache, resultHit)
	return addr, true
}

// Fill looks up the target's postal code once it is complete and writes the
// result into the target. On any failure the target is left unchanged and the
// failure is logged. It reports whether the target was updated.
func (a *Autofiller) Fill(ctx context.Context, t Target) bool {
	raw := t.PostalCodeValue()
	if !postalcode.IsComplete(raw) {
		return false
	}

	addr, err := a.Lookup(ctx, raw)
	if err != nil {
		a.log.WarnwCtx(ctx, "address autofill failed", "postal_code", postalcode.Mask(raw), "error", err)
		return false
	}
	t.ApplyAddress(addr)
	return true
}
