// Package engineerr defines the closed taxonomy of errors the storage and
// execution engine can return. Every failure mode named in the engine's
// design surfaces as one of these kinds so callers can distinguish them
// with errors.Is or KindOf rather than parsing messages.
package engineerr

import (
	"errors"
	"fmt"
)

// Kind identifies one of the engine's error categories. The set is closed;
// adding a new failure mode means adding a new Kind here.
type Kind string

const (
	UnknownTable       Kind = "unknown_table"
	DuplicateTable     Kind = "duplicate_table"
	UnknownColumn      Kind = "unknown_column"
	UnknownType        Kind = "unknown_type"
	UnknownScanType    Kind = "unknown_scan_type"
	TypeMismatch       Kind = "type_mismatch"
	Immutable          Kind = "immutable"
	DictionaryTooLarge Kind = "dictionary_too_large"
	InconsistentInput  Kind = "inconsistent_input"
	PrematureAccess    Kind = "premature_access"
	DoubleExecute      Kind = "double_execute"
	OutOfBounds        Kind = "out_of_bounds"
)

// Error is the concrete error type returned by the engine. It carries a
// Kind so callers can branch on failure category and an underlying message
// for humans.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, engineerr.New(engineerr.UnknownTable, "")) works for
// sentinel-style comparisons if ever needed. Kind comparisons normally go
// through KindOf instead.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds an *Error of the given kind with a fixed message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Newf builds an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, walking wrapped errors the way
// errors.As does. The second return value is false if err does not wrap
// an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
