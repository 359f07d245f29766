package temporal

import (
	"time"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/amirhossein-jamali/corekit/internal/domain/optional"
)

// iso8601Layout is the extended ISO-8601 UTC form with millisecond precision.
// The trailing Z is literal: instants always render in UTC.
const iso8601Layout = "2006-01-02T15:04:05.000Z"

// friendlyLayout renders the long-form UTC date; GMT is appended literally
// because the time package has no layout token for it
const friendlyLayout = "Mon, 02 Jan 2006 15:04:05"

// Instant is an immutable point in time stored as milliseconds since
// 1970-01-01T00:00:00Z. The count is signed, so instants before the epoch are
// representable. Equality and ordering are defined solely by the millisecond
// value.
type Instant struct {
	epochMillis int64
}

// Now captures the current wall-clock time. This is the only impure operation
// in the package: a single non-blocking read of the host clock.
func Now() Instant {
	return Instant{epochMillis: time.Now().UnixMilli()}
}

// OfEpochMilli creates an Instant from milliseconds since the epoch
func OfEpochMilli(n int64) Instant {
	return Instant{epochMillis: n}
}

// OfEpochSeconds creates an Instant from whole seconds since the epoch.
// No fractional-second precision is carried.
func OfEpochSeconds(n int64) Instant {
	return Instant{epochMillis: n * millisPerSecond}
}

// FromTime converts a time.Time, truncating sub-millisecond precision
func FromTime(t time.Time) Instant {
	return Instant{epochMillis: t.UnixMilli()}
}

// ParseISO8601 parses an ISO-8601 timestamp. Malformed input is rejected with
// a wrapped ErrParse rather than propagating a sentinel timestamp.
func ParseISO8601(s string) (Instant, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Instant{}, errs.NewParseError(s, err)
	}
	return FromTime(t), nil
}

// EpochMilli returns the millisecond count since the epoch
func (i Instant) EpochMilli() int64 {
	return i.epochMillis
}

// EpochSecond returns the epoch second, flooring toward negative infinity so
// pre-epoch instants round down rather than toward zero
func (i Instant) EpochSecond() int64 {
	sec := i.epochMillis / millisPerSecond
	if i.epochMillis%millisPerSecond != 0 && i.epochMillis < 0 {
		sec--
	}
	return sec
}

// IsAfter reports whether i is strictly after other
func (i Instant) IsAfter(other Instant) bool {
	return i.epochMillis > other.epochMillis
}

// IsBefore reports whether i is strictly before other
func (i Instant) IsBefore(other Instant) bool {
	return i.epochMillis < other.epochMillis
}

// IsEqual reports whether both instants hold the same millisecond value
func (i Instant) IsEqual(other Instant) bool {
	return i.epochMillis == other.epochMillis
}

// Plus returns a new Instant offset forward by the duration's signed
// millisecond value
func (i Instant) Plus(d Duration) Instant {
	return Instant{epochMillis: i.epochMillis + d.millis}
}

// Minus returns a new Instant offset backward by the duration's signed
// millisecond value
func (i Instant) Minus(d Duration) Instant {
	return Instant{epochMillis: i.epochMillis - d.millis}
}

// Difference returns the absolute millisecond gap between the two instants.
// It is symmetric: a.Difference(b) equals b.Difference(a).
func (i Instant) Difference(other Instant) Duration {
	gap := i.epochMillis - other.epochMillis
	if gap < 0 {
		gap = -gap
	}
	return Duration{millis: gap}
}

// IsWithinUpperBound reports whether other is strictly before i+rng.
// The upper bound is exclusive.
func (i Instant) IsWithinUpperBound(other Instant, rng Duration) bool {
	return other.epochMillis < i.epochMillis+rng.millis
}

// IsWithinLowerBound reports whether other is strictly after i-rng.
// The lower bound is exclusive.
func (i Instant) IsWithinLowerBound(other Instant, rng Duration) bool {
	return other.epochMillis > i.epochMillis-rng.millis
}

// IsWithinRange reports whether other lies in the open interval
// (i-rng, i+rng). Both bounds are exclusive, so other equal to i is within
// range for any non-negative rng.
func (i Instant) IsWithinRange(other Instant, rng Duration) bool {
	return i.IsWithinLowerBound(other, rng) && i.IsWithinUpperBound(other, rng)
}

// FindClosestInstant returns the candidate with the minimum absolute
// difference to i, or an absent Optional when candidates is empty. Ties
// resolve to the earliest-indexed candidate. A single linear scan is enough:
// candidate sets are expected to be small and unsorted.
func (i Instant) FindClosestInstant(candidates []Instant) optional.Optional[Instant] {
	if len(candidates) == 0 {
		return optional.None[Instant]()
	}

	closest := candidates[0]
	best := i.Difference(closest).millis
	for _, c := range candidates[1:] {
		// Strict less-than so the first minimum wins
		if gap := i.Difference(c).millis; gap < best {
			best = gap
			closest = c
		}
	}
	return optional.Some(closest)
}

// ToTime converts to a time.Time in UTC with the same epoch-millisecond value
func (i Instant) ToTime() time.Time {
	return time.UnixMilli(i.epochMillis).UTC()
}

// ISO8601 renders the instant as YYYY-MM-DDTHH:mm:ss.sssZ in UTC
func (i Instant) ISO8601() string {
	return i.ToTime().Format(iso8601Layout)
}

// FriendlyString renders the instant as a long-form UTC date string,
// e.g. "Thu, 01 Jan 1970 00:00:00 GMT"
func (i Instant) FriendlyString() string {
	return i.ToTime().Format(friendlyLayout) + " GMT"
}

// String returns the ISO-8601 rendering
func (i Instant) String() string {
	return i.ISO8601()
}
