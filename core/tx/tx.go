// Package tx provides a writer-style transaction: a state value paired with
// the domain events describing how it got there. Transitions return a Tx so
// state and evidence travel together; the caller persists the state and
// publishes the events in the recorded order.
package tx

import "slices"

// Tx pairs a state with its accumulated events. Events are open,
// consumer-defined values kept in insertion order. A Tx is never mutated in
// place: every operation returns a new one, so a held Tx can be shared
// freely.
type Tx[S any] struct {
	state  S
	events []any
}

// New builds a transaction around state with zero or more initial events.
func New[S any](state S, events ...any) Tx[S] {
	return Tx[S]{state: state, events: slices.Clone(events)}
}

// State returns the carried state.
func (t Tx[S]) State() S {
	return t.state
}

// Events returns the accumulated events in insertion order. The slice is a
// copy; callers cannot reach the transaction's own log through it.
func (t Tx[S]) Events() []any {
	return slices.Clone(t.events)
}

// Append records additional events after the existing ones.
func (t Tx[S]) Append(events ...any) Tx[S] {
	merged := make([]any, 0, len(t.events)+len(events))
	merged = append(merged, t.events...)
	merged = append(merged, events...)

	return Tx[S]{state: t.state, events: merged}
}

// Combine merges another transaction into this one: the result adopts
// other's state and carries this transaction's events first, then other's.
func (t Tx[S]) Combine(other Tx[S]) Tx[S] {
	return Tx[S]{state: other.state, events: concat(t.events, other.events)}
}

// Map transforms the state and keeps the event log untouched.
func Map[S, U any](t Tx[S], fn func(S) U) Tx[U] {
	return Tx[U]{state: fn(t.state), events: slices.Clone(t.events)}
}

// Bind chains a transition that produces its own events. The next
// transition sees only the current state; its events are appended after the
// ones already recorded.
func Bind[S, U any](t Tx[S], fn func(S) Tx[U]) Tx[U] {
	next := fn(t.state)

	return Tx[U]{state: next.state, events: concat(t.events, next.events)}
}

// CombineAll folds transactions left to right: the final state wins and the
// event logs concatenate in argument order. A single transaction folds to
// itself.
func CombineAll[S any](first Tx[S], rest ...Tx[S]) Tx[S] {
	merged := first
	for _, t := range rest {
		merged = merged.Combine(t)
	}

	return merged
}

func concat(a, b []any) []any {
	merged := make([]any, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)

	return merged
}
