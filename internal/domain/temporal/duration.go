// Package temporal provides the immutable time value types shared across the
// application: Duration, a scalar amount of elapsed time, and Instant, a point
// in time. Both store a signed millisecond count and derive new values instead
// of mutating, so instances can be shared across goroutines without
// synchronization.
package temporal

import (
	"time"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
)

// Millisecond scale factors
const (
	millisPerSecond int64 = 1000
	millisPerMinute       = 60 * millisPerSecond
	millisPerHour         = 60 * millisPerMinute
	millisPerDay          = 24 * millisPerHour
)

// Duration is an immutable amount of elapsed time stored as milliseconds.
// Durations built by the factories are non-negative; Minus may produce a
// negative Duration, which is a supported way to express signed deltas.
type Duration struct {
	millis int64
}

// OfMillis creates a Duration from milliseconds. Negative input is rejected
// with ErrInvalidArgument.
func OfMillis(n int64) (Duration, error) {
	if n < 0 {
		return Duration{}, errs.NewInvalidArgumentError("OfMillis", n, "milliseconds must be non-negative")
	}
	return Duration{millis: n}, nil
}

// OfSeconds creates a Duration from seconds.
// The sign is not validated: negative input yields a negative Duration.
func OfSeconds(n int64) Duration {
	return Duration{millis: n * millisPerSecond}
}

// OfMinutes creates a Duration from minutes.
// The sign is not validated: negative input yields a negative Duration.
func OfMinutes(n int64) Duration {
	return Duration{millis: n * millisPerMinute}
}

// OfHours creates a Duration from hours.
// The sign is not validated: negative input yields a negative Duration.
func OfHours(n int64) Duration {
	return Duration{millis: n * millisPerHour}
}

// OfDays creates a Duration from days.
// The sign is not validated: negative input yields a negative Duration.
func OfDays(n int64) Duration {
	return Duration{millis: n * millisPerDay}
}

// FromStd converts a time.Duration, truncating sub-millisecond precision
func FromStd(d time.Duration) Duration {
	return Duration{millis: d.Milliseconds()}
}

// Millis returns the stored millisecond count
func (d Duration) Millis() int64 {
	return d.millis
}

// Seconds returns the duration in seconds. Division is exact, so the result
// is fractional when the milliseconds are not a whole number of seconds.
func (d Duration) Seconds() float64 {
	return float64(d.millis) / float64(millisPerSecond)
}

// Minutes returns the duration in minutes with no rounding
func (d Duration) Minutes() float64 {
	return float64(d.millis) / float64(millisPerMinute)
}

// Hours returns the duration in hours with no rounding
func (d Duration) Hours() float64 {
	return float64(d.millis) / float64(millisPerHour)
}

// Days returns the duration in days with no rounding
func (d Duration) Days() float64 {
	return float64(d.millis) / float64(millisPerDay)
}

// Plus returns a new Duration holding the millisecond sum
func (d Duration) Plus(other Duration) Duration {
	return Duration{millis: d.millis + other.millis}
}

// Minus returns a new Duration holding the millisecond difference.
// The result may be negative.
func (d Duration) Minus(other Duration) Duration {
	return Duration{millis: d.millis - other.millis}
}

// Equals reports whether both durations hold the same millisecond count
func (d Duration) Equals(other Duration) bool {
	return d.millis == other.millis
}

// LessThan reports whether d is strictly shorter than other
func (d Duration) LessThan(other Duration) bool {
	return d.millis < other.millis
}

// GreaterThanOrEqual reports whether d is at least as long as other
func (d Duration) GreaterThanOrEqual(other Duration) bool {
	return d.millis >= other.millis
}

// Std converts to a time.Duration for use with the standard library and
// connector timeouts
func (d Duration) Std() time.Duration {
	return time.Duration(d.millis) * time.Millisecond
}

// String returns the standard library rendering of the duration
func (d Duration) String() string {
	return d.Std().String()
}
