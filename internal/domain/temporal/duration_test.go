package temporal

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestOfMillis(t *testing.T) {
	t.Run("valid amounts", func(t *testing.T) {
		testCases := []int64{0, 1, 999, 1000, 86400000, 9223372036854}

		for _, tc := range testCases {
			d, err := OfMillis(tc)
			require.NoError(t, err)
			assert.Equal(t, tc, d.Millis())
		}
	})

	t.Run("negative input is rejected", func(t *testing.T) {
		_, err := OfMillis(-1)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)

		_, err = OfMillis(-1000)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestUnitFactories(t *testing.T) {
	testCases := []struct {
		name     string
		d        Duration
		expected int64
	}{
		{"one second", OfSeconds(1), 1000},
		{"one minute", OfMinutes(1), 60000},
		{"one hour", OfHours(1), 3600000},
		{"one day", OfDays(1), 86400000},
		{"two days", OfDays(2), 172800000},
		{"zero", OfSeconds(0), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.d.Millis())
		})
	}
}

// The non-millisecond factories do not validate sign; these cases pin the
// behavior so any change to it is deliberate.
func TestUnitFactoriesAcceptNegativeInput(t *testing.T) {
	assert.Equal(t, int64(-1000), OfSeconds(-1).Millis())
	assert.Equal(t, int64(-60000), OfMinutes(-1).Millis())
	assert.Equal(t, int64(-3600000), OfHours(-1).Millis())
	assert.Equal(t, int64(-86400000), OfDays(-1).Millis())
}

func TestAccessors(t *testing.T) {
	t.Run("exact multiples", func(t *testing.T) {
		d := OfDays(1)
		assert.Equal(t, float64(86400), d.Seconds())
		assert.Equal(t, float64(1440), d.Minutes())
		assert.Equal(t, float64(24), d.Hours())
		assert.Equal(t, float64(1), d.Days())
	})

	t.Run("fractional results are not rounded", func(t *testing.T) {
		d, err := OfMillis(1500)
		require.NoError(t, err)
		assert.Equal(t, 1.5, d.Seconds())
		assert.Equal(t, 0.025, d.Minutes())
	})

	t.Run("negative durations divide the same way", func(t *testing.T) {
		assert.Equal(t, float64(-90), OfMinutes(-90).Minutes())
		assert.Equal(t, -1.5, OfMinutes(-90).Hours())
	})
}

func TestArithmetic(t *testing.T) {
	a := OfSeconds(90)
	b := OfSeconds(30)

	assert.Equal(t, int64(120000), a.Plus(b).Millis())
	assert.Equal(t, int64(60000), a.Minus(b).Millis())

	t.Run("subtraction may go negative", func(t *testing.T) {
		assert.Equal(t, int64(-60000), b.Minus(a).Millis())
	})

	t.Run("operands are unchanged", func(t *testing.T) {
		assert.Equal(t, int64(90000), a.Millis())
		assert.Equal(t, int64(30000), b.Millis())
	})
}

func TestComparisons(t *testing.T) {
	short := OfSeconds(1)
	long := OfSeconds(2)

	assert.True(t, short.Equals(OfSeconds(1)))
	assert.False(t, short.Equals(long))

	assert.True(t, short.LessThan(long))
	assert.False(t, long.LessThan(short))
	assert.False(t, short.LessThan(short))

	assert.True(t, long.GreaterThanOrEqual(short))
	assert.True(t, long.GreaterThanOrEqual(long))
	assert.False(t, short.GreaterThanOrEqual(long))
}

func TestStdConversion(t *testing.T) {
	d := OfSeconds(90)
	assert.Equal(t, 90*time.Second, d.Std())
	assert.Equal(t, "1m30s", d.String())

	t.Run("round trip", func(t *testing.T) {
		assert.True(t, FromStd(d.Std()).Equals(d))
	})

	t.Run("sub-millisecond precision is truncated", func(t *testing.T) {
		assert.Equal(t, int64(1), FromStd(1500*time.Microsecond).Millis())
	})
}

func TestDurationProperties(t *testing.T) {
	t.Run("millis round trip", rapid.MakeCheck(func(t *rapid.T) {
		n := rapid.Int64Range(0, 1<<52).Draw(t, "n")

		d, err := OfMillis(n)
		if err != nil {
			t.Fatalf("OfMillis(%d) failed: %v", n, err)
		}
		if d.Millis() != n {
			t.Fatalf("round trip lost value: %d != %d", d.Millis(), n)
		}
	}))

	t.Run("plus then minus is identity", rapid.MakeCheck(func(t *rapid.T) {
		a := OfSeconds(rapid.Int64Range(-1<<40, 1<<40).Draw(t, "a"))
		b := OfSeconds(rapid.Int64Range(-1<<40, 1<<40).Draw(t, "b"))

		if !a.Plus(b).Minus(b).Equals(a) {
			t.Fatalf("a.Plus(b).Minus(b) != a for a=%v b=%v", a, b)
		}
	}))

	t.Run("plus is commutative", rapid.MakeCheck(func(t *rapid.T) {
		a := OfSeconds(rapid.Int64Range(-1<<40, 1<<40).Draw(t, "a"))
		b := OfSeconds(rapid.Int64Range(-1<<40, 1<<40).Draw(t, "b"))

		if !a.Plus(b).Equals(b.Plus(a)) {
			t.Fatalf("a.Plus(b) != b.Plus(a) for a=%v b=%v", a, b)
		}
	}))
}
