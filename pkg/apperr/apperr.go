package apperr

import (
	"errors"
	"fmt"
)

// Kind tags an error with how the HTTP layer should report it.
type Kind int

const (
	// Validation is missing or invalid input, reported per field.
	Validation Kind = iota
	// NotFound means the referenced entity does not exist or does not
	// belong to the caller.
	NotFound
	// Conflict is a mutation against a terminal or concurrently-changed
	// resource (purchased cart, stale version, bad status transition).
	Conflict
	// Forbidden means the actor lacks permission.
	Forbidden
	// InvalidState is an internal invariant violation. It should be
	// unreachable; seeing one is a bug.
	InvalidState
)

// Error carries a kind, a human-readable message, and an optional
// field -> messages map for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string { return e.Message }

// WithKind retags the error, e.g. a field error whose cause is a missing
// referenced entity rather than bad input.
func (e *Error) WithKind(kind Kind) *Error {
	e.Kind = kind
	return e
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Field builds a single-field validation error.
func Field(field, msg string) *Error {
	return &Error{
		Kind:    Validation,
		Message: msg,
		Fields:  map[string][]string{field: {msg}},
	}
}

// FieldErrors wraps an accumulated field -> messages map.
func FieldErrors(fields map[string][]string) *Error {
	return &Error{Kind: Validation, Message: "Validation Errors", Fields: fields}
}

// KindOf reports the kind of err, or (0, false) if err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
