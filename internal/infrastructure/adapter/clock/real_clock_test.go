package clock

import (
	"testing"

	"github.com/amirhossein-jamali/corekit/internal/domain/temporal"
	"github.com/stretchr/testify/assert"
)

func TestRealClock(t *testing.T) {
	c := NewRealClock()

	before := temporal.Now()
	got := c.Now()
	after := temporal.Now()

	assert.False(t, got.IsBefore(before))
	assert.False(t, got.IsAfter(after))
}

func TestFixedClock(t *testing.T) {
	at := temporal.OfEpochMilli(1724630400000)
	c := NewFixedClock(at)

	assert.True(t, c.Now().IsEqual(at))
	assert.True(t, c.Now().IsEqual(at), "repeated reads return the same instant")

	t.Run("advance derives a new clock", func(t *testing.T) {
		moved := c.Advance(temporal.OfSeconds(30))

		assert.True(t, moved.Now().IsEqual(at.Plus(temporal.OfSeconds(30))))
		assert.True(t, c.Now().IsEqual(at), "original clock is unchanged")
	})
}
