// Package result provides a success-or-failure container that carries the
// outcome of a domain computation as a value. Pipelines compose with Map and
// AndThen instead of intermediate error checks; the boundary unwraps once.
package result

import (
	"errors"

	"github.com/jsamuelsen11/go-domain-kernel/core/option"
)

// errNilFailure keeps the container total when Err is miscalled with nil.
var errNilFailure = errors.New("result: Err constructed with nil error")

// Result holds either a value or an error, never both. The zero value is an
// Ok carrying T's zero value; construct failures with Err.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil err is replaced with a placeholder so that
// IsErr and Err never disagree.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNilFailure
	}

	return Result[T]{err: err}
}

// IsOk reports whether the result is a success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the result is a failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Unwrap returns the value and error in Go's native dual-return shape.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// MustUnwrap returns the value or panics with the failure. Reserve it for
// tests and process assembly, where a failure is a programming error.
func (r Result[T]) MustUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}

	return r.value
}

// Err returns the failure, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}

// UnwrapOr returns the value, or fallback on failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}

	return r.value
}

// UnwrapOrElse returns the value, or derives one from the failure.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err != nil {
		return fn(r.err)
	}

	return r.value
}

// MapErr transforms the failure and leaves a success untouched.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}

	return Err[T](fn(r.err))
}

// ToOption keeps the success channel and discards the failure: Ok becomes
// Some, Err becomes None. The error is lost; convert only when the caller
// genuinely does not care why the computation failed.
func (r Result[T]) ToOption() option.Option[T] {
	if r.err != nil {
		return option.None[T]()
	}

	return option.Some(r.value)
}

// Map transforms the value of a success and leaves a failure untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}

	return Ok(fn(r.value))
}

// AndThen chains a computation that may itself fail. The first failure in a
// chain short-circuits everything after it.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}

	return fn(r.value)
}

// FromOption completes the Option bridge: Some becomes Ok, None becomes Err
// carrying the supplied failure.
func FromOption[T any](o option.Option[T], err error) Result[T] {
	if v, ok := o.Unwrap(); ok {
		return Ok(v)
	}

	return Err[T](err)
}
