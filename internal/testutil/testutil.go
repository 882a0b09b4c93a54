// Package testutil provides shared test helpers for clocks and loggers.
package testutil

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// Clock returns a clock frozen at noon UTC of the given AD day.
func Clock(year int, month time.Month, day int) func() time.Time {
	at := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

// MutableClock is a clock whose time can be moved by tests. It is safe
// for concurrent use.
type MutableClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMutableClock returns a clock starting at t.
func NewMutableClock(t time.Time) *MutableClock {
	return &MutableClock{now: t}
}

// Now returns the current time of the clock.
func (c *MutableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *MutableClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
