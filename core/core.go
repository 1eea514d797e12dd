// Package core defines the failure vocabulary shared by every kernel
// container: small immutable error values with a stable machine code and a
// human-readable message.
//
// An Error compares structurally, so failures with a fixed message are
// package-level values shared by all callers rather than allocated per
// occurrence. Callers branch on the code, never on the message text.
package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Stable machine codes. The code is the contract; messages may be reworded.
const (
	CodeTimestampNaive = "timestamp_naive"
	CodeTimestampOrder = "timestamp_order"
	CodeArchived       = "archived_entity"
	CodeImmutableField = "immutable_field"
	CodeEmptyValue     = "vo_empty"
	CodeLengthExceeded = "vo_len_gt"
	CodeOutOfRange     = "vo_out_of_range"
)

// Error is a domain failure as a plain value. Two errors are equal exactly
// when code and message both match.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Code + ": " + e.Message
}

// Shared fixed failures.
var (
	// ErrTimestampNaive rejects instants that carry no usable point in
	// time. The zero time.Time is the only such value in Go.
	ErrTimestampNaive = Error{Code: CodeTimestampNaive, Message: "timestamp must be a non-zero instant"}

	// ErrTimestampOrder rejects clocks that run backwards relative to an
	// entity's last recorded mutation.
	ErrTimestampOrder = Error{Code: CodeTimestampOrder, Message: "updated_at must be <= now"}

	// ErrArchived rejects any mutation of an archived entity other than
	// unarchiving it.
	ErrArchived = Error{Code: CodeArchived, Message: "archived entity cannot be modified"}

	// ErrEmptyValue rejects strings that are empty after trimming.
	ErrEmptyValue = Error{Code: CodeEmptyValue, Message: "empty string is not allowed"}
)

// ImmutableFieldsError reports an attempt to change reserved lifecycle
// fields. The offending names are listed sorted and de-duplicated so the
// message is deterministic regardless of input order.
func ImmutableFieldsError(fields []string) Error {
	names := slices.Clone(fields)
	slices.Sort(names)
	names = slices.Compact(names)

	return Error{
		Code:    CodeImmutableField,
		Message: "immutable fields cannot be changed: " + strings.Join(names, ", "),
	}
}

// LengthError reports a value that exceeds its length limit.
func LengthError(limit, got int) Error {
	return Error{
		Code:    CodeLengthExceeded,
		Message: fmt.Sprintf("length must be <= %d (got=%d)", limit, got),
	}
}

// OutOfRangeError reports a value outside an inclusive range. Callers pass
// "-inf" or "+inf" for an absent bound.
func OutOfRangeError(min, max, got any) Error {
	return Error{
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%v <= x <= %v (got=%v)", min, max, got),
	}
}

// CodeOf extracts the machine code from err when it is (or wraps) an Error.
func CodeOf(err error) (string, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Code, true
	}

	return "", false
}

// IsCode reports whether err is (or wraps) an Error with the given code.
func IsCode(err error, code string) bool {
	got, ok := CodeOf(err)

	return ok && got == code
}
