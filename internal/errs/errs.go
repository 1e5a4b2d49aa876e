// Package errs defines the error taxonomy shared by the data-access layer.
//
// Every failure that leaves a repository is an *Error carrying a Kind, so
// callers can switch on the category without parsing driver messages.
package errs

import (
	"errors"
	"fmt"
)

// Kind is the category of a data-access failure.
type Kind string

const (
	KindConnectionFailure   Kind = "connection_failure"
	KindUniqueViolation     Kind = "unique_violation"
	KindForeignKeyViolation Kind = "foreign_key_violation"
	KindNotNullViolation    Kind = "not_null_violation"
	KindCheckViolation      Kind = "check_violation"
	KindOperational         Kind = "operational_error"
	KindNotFound            Kind = "not_found"
	KindInvalidArgument     Kind = "invalid_argument"
)

// Error is a categorized data-access error.
type Error struct {
	Kind    Kind
	Table   string
	Column  string
	Message string
	// Fields lists offending input fields for InvalidArgument errors.
	Fields []string

	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Table != "" {
		msg = fmt.Sprintf("%s: %s", e.Table, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind. A target with an
// empty Kind matches any *Error; a target with a Message must match it too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// New returns an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns an *Error of the given kind wrapping err.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Sentinels for argument checks done before any SQL is built.
var (
	ErrEmptyPredicate = New(KindInvalidArgument, "predicate must name at least one column")
	ErrNoFields       = New(KindInvalidArgument, "update must set at least one column")
	ErrUnknownTable   = New(KindInvalidArgument, "unknown table")
	ErrUnknownColumn  = New(KindInvalidArgument, "unknown column")
)

// InvalidArgument builds an InvalidArgument error for table, naming fields.
// cause is usually one of the sentinels above and may be nil.
func InvalidArgument(table string, cause error, message string, fields ...string) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Table:   table,
		Message: message,
		Fields:  fields,
		Err:     cause,
	}
}
