package detail

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
var (
	// ErrMissing signals that a value has nothing to render. It never escapes
	// a Descriptor's required render; see [ErrMissingDetail].
	ErrMissing = NewError("missing value")

	// ErrMissingDetail reports a required detail with no value. The subject is
	// the detail's constant name.
	ErrMissingDetail = NewError("missing detail")

	// ErrMissingEnv reports a required host environment variable (OUT_DIR)
	// that was not set. The subject is the variable name.
	ErrMissingEnv = NewError("a required environment variable is missing")

	ErrIO            = NewError("input/output error")
	ErrFormat        = NewError("unable to format")
	ErrUnknownKind   = NewError("unknown detail kind")
	ErrUnknownSyntax = NewError("unknown target syntax")
)

// Error represents an error with an optional subject and structured logging
// attributes. It implements both error and slog.LogValuer interfaces.
//
// Errors derived from a sentinel through [Error.Wrap], [Error.With] or
// [Error.For] match that sentinel with [errors.Is].
type Error struct {
	msg     string
	subject string
	err     error
	attrs   []slog.Attr
	base    *Error
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// MissingDetail returns the error reported when the required detail with
// constant name has no value.
func MissingDetail(name string) *Error {
	return ErrMissingDetail.For(name)
}

// MissingEnv returns the error reported when the required environment
// variable name is not set.
func MissingEnv(name string) *Error {
	return ErrMissingEnv.For(name)
}

// Error implements the error interface.
func (e *Error) Error() string {
	// "<msg>: <subject>: <err>", omitting whichever parts are empty.
	part := make([]string, 0, 3)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.subject != "" {
		part = append(part, e.subject)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Subject returns the name of the detail or variable the error is about.
func (e *Error) Subject() string { return e.subject }

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || (e.base != nil && e.base == t)
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.subject != "" {
		attrs = append(attrs, slog.String("subject", e.subject))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := e.derive()
	c.err = err

	return c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.derive()
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return c
}

// For returns a copy of the error about the named subject.
func (e *Error) For(subject string) *Error {
	c := e.derive()
	c.subject = subject

	return c
}

func (e *Error) derive() *Error {
	base := e.base
	if base == nil {
		base = e
	}

	return &Error{
		msg:     e.msg,
		subject: e.subject,
		err:     e.err,
		attrs:   e.attrs, // Share attrs
		base:    base,
	}
}
