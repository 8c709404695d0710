// Package testutil provides deterministic time sources for tests.
package testutil

import (
	"sync"

	"github.com/lvidal/trainstreak/internal/routine"
)

// Calendar is a controllable calendar-date clock for tests.
//
// Unlike routine.Today, a Calendar never moves on its own: the test
// advances it explicitly, so "overnight" scenarios (reconcile, then a
// new day dawns, then reconcile again) run deterministically.
//
// Thread-safety: all methods are safe for concurrent use via an
// internal mutex.
type Calendar struct {
	mu    sync.Mutex
	today routine.Date
}

// NewCalendar creates a calendar pinned to the given date.
func NewCalendar(today routine.Date) *Calendar {
	return &Calendar{today: today}
}

// Today returns the pinned date. Pass it as engine.WithToday(c.Today).
func (c *Calendar) Today() routine.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today
}

// Advance moves the calendar forward by n days (n may be negative to
// rewind when a test needs it).
func (c *Calendar) Advance(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = c.today.AddDays(n)
}

// Set pins the calendar to an exact date.
func (c *Calendar) Set(d routine.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = d
}
