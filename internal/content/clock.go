// internal/content/clock.go
//
// Monotonic created_at stamping.
//
// Created timestamps double as half of the natural key used to recover a
// generated id after an insert the store did not echo back, so two creates
// in the same process must never share a stamp.  The clock bumps by one
// microsecond whenever the wall clock has not advanced past the previous
// stamp.
package content

import (
	"sync"
	"time"
)

// Clock issues strictly increasing timestamps for one process.  The zero
// value is ready to use.
type Clock struct {
	mu   sync.Mutex
	last time.Time
}

// Stamp returns the current UTC time, nudged forward if needed so that
// consecutive calls never return equal or decreasing values.
func (c *Clock) Stamp() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	if !now.After(c.last) {
		now = c.last.Add(time.Microsecond)
	}
	c.last = now
	return now
}
