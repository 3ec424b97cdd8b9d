// Package timeutil abstracts the time source so lookup latency can be
// measured deterministically in tests.
package timeutil

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// System reads the wall clock in UTC.
type System struct{}

func (System) Now() time.Time                  { return time.Now().UTC() }
func (System) Since(t time.Time) time.Duration { return time.Since(t) }

// Default is used wherever no clock is injected.
var Default Clock = System{}

// Frozen only moves when Set or Advance is called. Safe for concurrent use.
type Frozen struct {
	mu sync.RWMutex
	t  time.Time
}

func NewFrozen(t time.Time) *Frozen { return &Frozen{t: t} }

func (c *Frozen) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

func (c *Frozen) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (c *Frozen) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *Frozen) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
