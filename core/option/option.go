// Package option provides an explicit presence/absence container. Absence is
// a value, not a nil pointer, so call sites spell out both branches.
package option

import "fmt"

// Option holds either a value (Some) or nothing (None). The zero value is
// None, so absence costs no allocation and every Option of a given type
// shares the one empty representation.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the contained value and whether it is present.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.present
}

// MustUnwrap returns the contained value or panics when absent. Reserve it
// for call sites that have already proven presence.
func (o Option[T]) MustUnwrap() T {
	if !o.present {
		panic("option: unwrap of None")
	}

	return o.value
}

// UnwrapOr returns the contained value, or fallback when absent.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// ToPtr bridges to Go's native nullable: a pointer that is nil exactly when
// the option is absent. The pointee is a copy.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}

	v := o.value

	return &v
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// FromPtr bridges from Go's native nullable: nil becomes None, anything else
// becomes Some of the pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// Map transforms the contained value when present and leaves None untouched.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}

	return Some(fn(o.value))
}

// AndThen chains a computation that may itself produce nothing.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}

	return fn(o.value)
}
