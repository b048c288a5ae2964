// Package gerr holds the typed error taxonomy used across the grammar
// compiler. Every fatal authoring or configuration failure is returned as
// an *Error so callers can distinguish kinds with errors.Is/errors.As
// instead of string-matching messages.
package gerr

import "fmt"

// Kind identifies the category of a compiler error.
type Kind string

const (
	DuplicateSymbol Kind = "duplicate_symbol"
	IllFormedName   Kind = "ill_formed_name"
	IllFormedRule   Kind = "ill_formed_rule"
	DuplicateRule   Kind = "duplicate_rule"
	UnknownSymbol   Kind = "unknown_symbol"
	ArityMismatch   Kind = "arity_mismatch"
	BadConfig       Kind = "bad_config"
)

// Error is a compiler error carrying a Kind, a human-readable message
// naming the offending LHS/RHS, and an optional wrapped cause.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Msg, e.Cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap allows errors.Is/errors.As to see through to the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *Error with the same Kind, allowing
// errors.Is(err, gerr.New(gerr.DuplicateSymbol, "")) style checks.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New constructs an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error of the given kind wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}
