// Package testutil provides deterministic test doubles shared by the
// tracker, cli, and harness test suites.
package testutil

import (
	"sync"
	"time"
)

// FixedClock is a wall clock frozen at a configurable instant.
//
// Unlike tracker.SystemClock, FixedClock only moves when a test tells
// it to. This pins down overdue evaluation and the CreatedAt/UpdatedAt
// stamps, so timestamp assertions and golden files stay stable.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock frozen at the given instant.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now returns the frozen instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative durations move it back.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to a specific instant.
func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
