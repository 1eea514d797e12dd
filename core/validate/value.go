package validate

import "github.com/jsamuelsen11/go-domain-kernel/core/result"

// Sanitizer is the capability a rules type grants: turning a raw input into
// an accepted value or a coded failure. Rules types are zero-size structs,
// so the capability lives entirely in the type system.
type Sanitizer[T any] interface {
	Sanitize(raw T) result.Result[T]
}

// Value is an immutable wrapper whose rules are part of its type: a
// Value[string, titleRules] and a Value[string, slugRules] are distinct Go
// types even though both wrap a string. The only way in is New, so holding a
// Value proves the sanitizer accepted it.
type Value[T any, S Sanitizer[T]] struct {
	value T
}

// New runs the rules type's sanitizer over raw and wraps the accepted value.
func New[T any, S Sanitizer[T]](raw T) result.Result[Value[T, S]] {
	var rules S

	return result.Map(rules.Sanitize(raw), func(accepted T) Value[T, S] {
		return Value[T, S]{value: accepted}
	})
}

// Unwrap returns the accepted value.
func (v Value[T, S]) Unwrap() T {
	return v.value
}

// Identity is the default rules type: it accepts every input unchanged.
type Identity[T any] struct{}

// Sanitize implements Sanitizer.
func (Identity[T]) Sanitize(raw T) result.Result[T] {
	return result.Ok(raw)
}
