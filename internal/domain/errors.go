package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels for errors.Is checks. Services classify kernel error codes into
// these at the boundary; the HTTP layer maps them onto status codes.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Shared field-level validation messages.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)

// ValidationError carries per-field failures. errors.Is(err, ErrValidation)
// answers "did validation fail"; errors.As exposes Fields for transports
// that render field detail.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the failures in field order, so the same problems always
// produce the same message.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	b.WriteString(": ")

	for i, name := range slices.Sorted(maps.Keys(e.Fields)) {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(e.Fields[name])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
