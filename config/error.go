package config

import (
	"log/slog"
	"strings"
)

// Error represents a selection file error with structured logging support.
// Errors derived from a sentinel with [Error.Wrap] or [Error.With] match it
// with [errors.Is].
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
	base  *Error
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && (e == t || (e.base != nil && e.base == t))
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
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

func (e *Error) derive() *Error {
	base := e.base
	if base == nil {
		base = e
	}

	return &Error{msg: e.msg, err: e.err, attrs: e.attrs, base: base}
}

var (
	ErrRead          = NewError("read selection file")
	ErrParse         = NewError("parse selection file")
	ErrMarshal       = NewError("marshal selection file")
	ErrUnknownPreset = NewError("unknown preset")
	ErrRule          = NewError("invalid rule")
)
