package optional

import (
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	o := Some(42)

	assert.True(t, o.IsPresent())

	v, err := o.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestNone(t *testing.T) {
	o := None[int]()

	assert.False(t, o.IsPresent())

	_, err := o.Get()
	assert.ErrorIs(t, err, errs.ErrIllegalState)
}

func TestFromPtr(t *testing.T) {
	t.Run("nil pointer is absent", func(t *testing.T) {
		var p *string
		assert.False(t, FromPtr(p).IsPresent())
	})

	t.Run("non-nil pointer is present with the pointed value", func(t *testing.T) {
		s := "hello"
		o := FromPtr(&s)

		v, err := o.Get()
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("copies the value at construction", func(t *testing.T) {
		n := 1
		o := FromPtr(&n)
		n = 2

		v, err := o.Get()
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 5, Some(5).OrElse(9))
	assert.Equal(t, 9, None[int]().OrElse(9))
}

func TestOrElseGet(t *testing.T) {
	t.Run("supplier not invoked when present", func(t *testing.T) {
		called := false
		v := Some(5).OrElseGet(func() int {
			called = true
			return 9
		})

		assert.Equal(t, 5, v)
		assert.False(t, called)
	})

	t.Run("supplier invoked when absent", func(t *testing.T) {
		v := None[int]().OrElseGet(func() int { return 9 })
		assert.Equal(t, 9, v)
	})
}

func TestOrElseThrow(t *testing.T) {
	errNotFound := errors.New("not found")

	t.Run("present returns value without invoking thrower", func(t *testing.T) {
		v, err := Some("x").OrElseThrow(func() error {
			t.Fatal("thrower must not be invoked when present")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "x", v)
	})

	t.Run("absent returns the thrower's error", func(t *testing.T) {
		_, err := None[string]().OrElseThrow(func() error { return errNotFound })
		assert.ErrorIs(t, err, errNotFound)
	})

	t.Run("nil from thrower is replaced with illegal state", func(t *testing.T) {
		_, err := None[string]().OrElseThrow(func() error { return nil })
		assert.ErrorIs(t, err, errs.ErrIllegalState)
	})
}

func TestIfPresent(t *testing.T) {
	t.Run("consumer receives the value when present", func(t *testing.T) {
		var got int
		Some(7).IfPresent(func(v int) { got = v })
		assert.Equal(t, 7, got)
	})

	t.Run("consumer not invoked when absent", func(t *testing.T) {
		None[int]().IfPresent(func(int) {
			t.Fatal("consumer must not be invoked when absent")
		})
	})
}

func TestMap(t *testing.T) {
	t.Run("transforms present value", func(t *testing.T) {
		o := Map(Some(5), func(v int) int { return v * 2 })

		v, err := o.Get()
		require.NoError(t, err)
		assert.Equal(t, 10, v)
	})

	t.Run("changes element type", func(t *testing.T) {
		o := Map(Some(5), func(v int) string { return "n" })

		v, err := o.Get()
		require.NoError(t, err)
		assert.Equal(t, "n", v)
	})

	t.Run("absent stays absent and fn is not invoked", func(t *testing.T) {
		o := Map(None[int](), func(v int) int {
			t.Fatal("fn must not be invoked when absent")
			return 0
		})
		assert.False(t, o.IsPresent())
	})
}

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	t.Run("keeps value passing the predicate", func(t *testing.T) {
		o := Some(4).Filter(even)

		v, err := o.Get()
		require.NoError(t, err)
		assert.Equal(t, 4, v)
	})

	t.Run("drops value failing the predicate", func(t *testing.T) {
		assert.False(t, Some(3).Filter(even).IsPresent())
	})

	t.Run("absent stays absent", func(t *testing.T) {
		assert.False(t, None[int]().Filter(even).IsPresent())
	})
}

func TestToPtr(t *testing.T) {
	assert.Nil(t, None[int]().ToPtr())

	p := Some(3).ToPtr()
	require.NotNil(t, p)
	assert.Equal(t, 3, *p)
}

func TestZeroValueIsAbsent(t *testing.T) {
	var o Optional[int]
	assert.False(t, o.IsPresent())
}
