// Package optional provides an immutable container representing the presence
// or absence of a value, as a type-safe alternative to nil pointers.
package optional

import (
	"fmt"

	errs "github.com/amirhossein-jamali/corekit/internal/domain/error"
)

// Optional holds either a present value of type T or nothing. The zero value
// is absent. Instances are never mutated after construction.
type Optional[T any] struct {
	value   T
	present bool
}

// Some creates an Optional containing a value
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None creates an absent Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr creates an Optional from a pointer; a nil pointer yields an absent
// Optional
func FromPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsPresent reports whether a value is held
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value, or ErrIllegalState when absent
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, fmt.Errorf("get on absent optional: %w", errs.ErrIllegalState)
	}
	return o.value, nil
}

// OrElse returns the held value if present, else other
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the held value if present, else invokes supplier and
// returns its result. The supplier is only invoked on absence.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}
	return supplier()
}

// OrElseThrow returns the held value if present. When absent it invokes
// thrower and returns the resulting error; thrower must return a non-nil
// error, and a nil result is replaced with ErrIllegalState so an absent value
// is never handed back to the caller.
func (o Optional[T]) OrElseThrow(thrower func() error) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	if err := thrower(); err != nil {
		return zero, err
	}
	return zero, fmt.Errorf("thrower returned nil on absent optional: %w", errs.ErrIllegalState)
}

// IfPresent invokes consumer with the held value only when present
func (o Optional[T]) IfPresent(consumer func(T)) {
	if o.present {
		consumer(o.value)
	}
}

// Filter returns the same-valued Optional when present and the predicate
// holds; otherwise an absent Optional
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr converts the Optional to a pointer, nil when absent
func (o Optional[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// Map returns an Optional holding fn(value) when o is present, else an absent
// Optional of the target type. fn is not invoked on absence. This is a
// package-level function because Go methods cannot introduce type parameters.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}
