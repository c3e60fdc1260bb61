// Package cerr implements the four fatal error kinds cirbo surfaces to its
// caller: IOError, ParseError, InvariantViolation and ConfigError. There
// are no recoverable errors in the core; every Error aborts the pipeline.
package cerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind tags which of the four fatal error categories an Error belongs to.
type Kind int

const (
	IOError Kind = iota
	ParseError
	InvariantViolation
	ConfigError
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "IOError"
	case ParseError:
		return "ParseError"
	case InvariantViolation:
		return "InvariantViolation"
	case ConfigError:
		return "ConfigError"
	default:
		return "UnknownError"
	}
}

// Error is cirbo's single exported error type. Op names the operation that
// failed (e.g. "bench.Parse", "rewrite.RedundantGatesCleaner"); Message
// describes what went wrong; Line is the 1-based offending line number for
// ParseError and is 0 when not applicable.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Line    int
	cause   error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s in %s (line %d): %s", e.Kind, e.Op, e.Line, e.Message)
	}
	return fmt.Sprintf("%s in %s: %s", e.Kind, e.Op, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// New constructs an Error with no wrapped cause.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap constructs an Error that wraps cause with pkg/errors so the
// original stack and underlying message survive alongside the kind/op
// classification.
func Wrap(kind Kind, op string, cause error, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message, cause: errors.Wrap(cause, message)}
}

// AtLine is a convenience for a ParseError tied to one offending line,
// reported with that line number.
func AtLine(op string, line int, message string) *Error {
	return &Error{Kind: ParseError, Op: op, Message: message, Line: line}
}

// Is reports whether err is a cirbo Error of the given Kind, unwrapping
// through any wrapping in between.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
