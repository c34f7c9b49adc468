// Package errs provides the single error taxonomy used across dictgraph.
//
// Every failure surfaced from schema loading, graph construction, or
// denormalization carries one of a closed set of [Kind] values. Lookups that
// are merely "absent" (a missing node, a neighbor that doesn't exist) are
// never reported through this package — they return a zero value and a
// boolean, per the package's own policy (see each component's doc comment).
package errs

import (
	"errors"
	"fmt"
)

// Kind is a stable, closed classification of failure.
type Kind uint8

const (
	// BuildError covers dictionary parse failures, missing required
	// fields, unknown property types, duplicate labels, and missing
	// $ref targets.
	BuildError Kind = iota

	// ConnectionError covers external-source reachability failures.
	ConnectionError

	// SourceError covers external-source query/row-shape failures (a
	// non-object _props/_sysan column, a missing column, etc.).
	SourceError

	// IoError covers dictionary file read failures.
	IoError

	// ParseError covers malformed structured-document input.
	ParseError

	// ReferentialError covers add_edge calls whose endpoint is absent
	// from the graph's node set.
	ReferentialError
)

// String returns the taxonomy name used in error messages and tests.
func (k Kind) String() string {
	switch k {
	case BuildError:
		return "BuildError"
	case ConnectionError:
		return "ConnectionError"
	case SourceError:
		return "SourceError"
	case IoError:
		return "IoError"
	case ParseError:
		return "ParseError"
	case ReferentialError:
		return "ReferentialError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type produced by every dictgraph component.
//
// Error is immutable after construction and implements Unwrap so that
// errors.Is and errors.As compose with sentinels from this and other
// packages. Construct one with [New] or [Wrap].
type Error struct {
	kind Kind
	op   string // e.g. "dictionary.Resolve", "cache.AddEdge"
	id   string // offending identifier: schema id, node id, table name...
	err  error  // wrapped cause, may be nil
}

// New creates an Error with no wrapped cause.
func New(kind Kind, op, msg string) *Error {
	return &Error{kind: kind, op: op, err: errors.New(msg)}
}

// Wrap creates an Error that wraps an existing cause.
func Wrap(kind Kind, op string, cause error) *Error {
	return &Error{kind: kind, op: op, err: cause}
}

// WithID attaches the offending identifier (schema id, node id, label...)
// and returns the receiver for chaining.
func (e *Error) WithID(id string) *Error {
	e.id = id
	return e
}

// Kind returns the error's taxonomy classification.
func (e *Error) Kind() Kind {
	if e == nil {
		return BuildError
	}
	return e.kind
}

// Op returns the operation label that produced this error.
func (e *Error) Op() string {
	if e == nil {
		return ""
	}
	return e.op
}

// ID returns the offending identifier, if any was attached.
func (e *Error) ID() string {
	if e == nil {
		return ""
	}
	return e.id
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.kind, e.op)
	if e.id != "" {
		msg += fmt.Sprintf(" (%s)", e.id)
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause, enabling errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Is reports whether target is an *Error with the same Kind. This lets
// callers write errors.Is(err, errs.BuildError) style checks via [KindError].
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.kind == other.kind
	}
	return false
}

// KindError returns a sentinel *Error usable with errors.Is to test for a
// specific Kind without caring about the message or op, e.g.:
//
//	if errors.Is(err, errs.KindError(errs.ReferentialError)) { ... }
func KindError(k Kind) *Error {
	return &Error{kind: k}
}
