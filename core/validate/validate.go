// Package validate builds sanitized value types out of small composable
// validators. A validator inspects a raw input and either passes it through
// or returns a coded failure; the Value wrapper then makes "validated" part
// of the type so unchecked data cannot masquerade as checked.
package validate

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-domain-kernel/core"
	"github.com/jsamuelsen11/go-domain-kernel/core/option"
	"github.com/jsamuelsen11/go-domain-kernel/core/result"
)

// Validator checks a raw value. Success carries the value onward; validators
// never rewrite their input.
type Validator[T any] func(T) result.Result[T]

// All combines validators left to right. The first failure wins and later
// validators do not run; success returns the original input.
func All[T any](validators ...Validator[T]) Validator[T] {
	return func(value T) result.Result[T] {
		for _, v := range validators {
			if r := v(value); r.IsErr() {
				return r
			}
		}

		return result.Ok(value)
	}
}

// NonEmpty fails strings that are empty after trimming surrounding
// whitespace. Trimming is only the emptiness test: the value that passes
// through is the original, untrimmed string. Callers wanting canonical
// storage add their own normalization step.
func NonEmpty() Validator[string] {
	return func(value string) result.Result[string] {
		if strings.TrimSpace(value) == "" {
			return result.Err[string](core.ErrEmptyValue)
		}

		return result.Ok(value)
	}
}

// MaxLength fails strings longer than limit. Length counts runes, not
// bytes, so multi-byte text is measured the way a reader would count it.
func MaxLength(limit int) Validator[string] {
	return func(value string) result.Result[string] {
		if got := utf8.RuneCountInString(value); got > limit {
			return result.Err[string](core.LengthError(limit, got))
		}

		return result.Ok(value)
	}
}

// Match fails strings the pattern does not cover in full. The pattern is
// anchored over the entire input, so a match on a substring is not enough.
// Mismatches fail with the given code and hint ("invalid format" when the
// hint is empty). An invalid pattern panics at construction, same as
// regexp.MustCompile.
func Match(pattern, code, hint string) Validator[string] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)\z`)

	if hint == "" {
		hint = "invalid format"
	}

	failure := core.Error{Code: code, Message: hint}

	return func(value string) result.Result[string] {
		if !re.MatchString(value) {
			return result.Err[string](failure)
		}

		return result.Ok(value)
	}
}

// Range fails values outside the inclusive [min, max] interval. Either
// bound may be absent, leaving that side unbounded.
func Range[T cmp.Ordered](min, max option.Option[T]) Validator[T] {
	return func(value T) result.Result[T] {
		lo, hasLo := min.Unwrap()
		hi, hasHi := max.Unwrap()

		if (hasLo && value < lo) || (hasHi && value > hi) {
			return result.Err[T](core.OutOfRangeError(boundLabel(min, "-inf"), boundLabel(max, "+inf"), value))
		}

		return result.Ok(value)
	}
}

func boundLabel[T cmp.Ordered](bound option.Option[T], absent string) string {
	v, ok := bound.Unwrap()
	if !ok {
		return absent
	}

	return fmt.Sprint(v)
}
