// Package clock provides Clock implementations over the temporal core.
package clock

import (
	"github.com/amirhossein-jamali/corekit/internal/domain/port/core"
	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
)

// RealClock implements the Clock interface with the host wall clock
type RealClock struct{}

// NewRealClock creates a new real clock
func NewRealClock() core.Clock {
	return &RealClock{}
}

// Now returns the current instant
func (c *RealClock) Now() temporal.Instant {
	return temporal.Now()
}

// FixedClock implements the Clock interface with a pinned instant, for tests
// and deterministic replay
type FixedClock struct {
	at temporal.Instant
}

// NewFixedClock creates a clock pinned to the given instant
func NewFixedClock(at temporal.Instant) *FixedClock {
	return &FixedClock{at: at}
}

// Now returns the pinned instant
func (c *FixedClock) Now() temporal.Instant {
	return c.at
}

// Advance returns a new fixed clock moved forward by d
func (c *FixedClock) Advance(d temporal.Duration) *FixedClock {
	return &FixedClock{at: c.at.Plus(d)}
}
