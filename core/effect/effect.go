// Package effect provides a deferred computation container: an IO describes
// work without performing it. Composition with Map, AndThen and Tap builds a
// larger description; nothing executes until Run. The kernel's containers
// stay pure, so anything that touches the outside world belongs here at the
// caller's edge, not inside domain transitions.
package effect

import (
	"fmt"

	"github.com/jsamuelsen11/go-domain-kernel/core/result"
)

// IO wraps a deferred computation producing T. The zero IO is not runnable;
// obtain one from Of, Delay or Try.
type IO[T any] struct {
	thunk func() T
}

// Of lifts an already-computed value. The value is captured now; only its
// delivery is deferred.
func Of[T any](value T) IO[T] {
	return IO[T]{thunk: func() T { return value }}
}

// Delay defers a computation. The thunk runs once per Run call, not at
// construction.
func Delay[T any](thunk func() T) IO[T] {
	return IO[T]{thunk: thunk}
}

// Run executes the deferred computation and returns its value.
func (io IO[T]) Run() T {
	return io.thunk()
}

// Tap attaches a side observation that sees the value without changing it.
// Like everything else here, it runs only under Run.
func (io IO[T]) Tap(side func(T)) IO[T] {
	return IO[T]{thunk: func() T {
		value := io.thunk()
		side(value)

		return value
	}}
}

// Attempt converts a computation that may panic into one that always
// completes, delivering the panic as a failed result. A panic value that is
// already an error passes through unchanged; anything else is wrapped.
// It is a package function rather than an IO method: a method mentioning
// IO[result.Result[T]] on IO[T] is an instantiation cycle the compiler
// rejects.
func Attempt[T any](io IO[T]) IO[result.Result[T]] {
	return IO[result.Result[T]]{thunk: func() (r result.Result[T]) {
		defer func() {
			if rec := recover(); rec != nil {
				if err, ok := rec.(error); ok {
					r = result.Err[T](err)
				} else {
					r = result.Err[T](fmt.Errorf("recovered panic: %v", rec))
				}
			}
		}()

		return result.Ok(io.thunk())
	}}
}

// Try lifts Go's native fallible call shape into a deferred result.
func Try[T any](fn func() (T, error)) IO[result.Result[T]] {
	return IO[result.Result[T]]{thunk: func() result.Result[T] {
		value, err := fn()
		if err != nil {
			return result.Err[T](err)
		}

		return result.Ok(value)
	}}
}

// Map transforms the eventual value.
func Map[T, U any](io IO[T], fn func(T) U) IO[U] {
	return IO[U]{thunk: func() U { return fn(io.thunk()) }}
}

// AndThen sequences a dependent deferred computation.
func AndThen[T, U any](io IO[T], fn func(T) IO[U]) IO[U] {
	return IO[U]{thunk: func() U { return fn(io.thunk()).Run() }}
}
