package detail

import (
	"log/slog"
	"slices"
)

// Value is the current value of a detail, renderable in a [Syntax].
type Value interface {
	// Required returns the bare literal of the value. It fails with
	// [ErrMissing] when there is no value.
	Required(s Syntax) (string, error)
	// Optional returns the presence-wrapped literal of the value. Absence is
	// never an error; it renders as the syntax's none literal.
	Optional(s Syntax) (string, error)
}

type scalar struct {
	value   string
	present bool
}

// Scalar returns a string value embedded as a quoted literal.
func Scalar(value string, present bool) Value {
	return scalar{value: value, present: present}
}

func (v scalar) Required(s Syntax) (string, error) {
	if !v.present {
		return "", ErrMissing
	}

	return s.Quote(v.value), nil
}

func (v scalar) Optional(s Syntax) (string, error) {
	if !v.present {
		return s.None(TypeString), nil
	}

	return s.Some(TypeString, s.Quote(v.value)), nil
}

type deferred struct {
	variable string
	scalar
}

// Deferred returns a string value read from variable when the consuming
// program is compiled, where the syntax allows it.
//
// The snapshot value and present describe the variable at generation time:
// a required render fails when it is unset, even though the emitted
// expression would otherwise be resolved later. Syntaxes without deferred
// lookups embed the snapshot.
func Deferred(variable, value string, present bool) Value {
	return deferred{variable: variable, scalar: scalar{value, present}}
}

func (v deferred) Required(s Syntax) (string, error) {
	if !v.present {
		return "", ErrMissing
	}

	if expr, ok := s.Deferred(v.variable); ok {
		return expr, nil
	}

	return v.scalar.Required(s)
}

func (v deferred) Optional(s Syntax) (string, error) {
	if expr, ok := s.DeferredOptional(v.variable); ok {
		return expr, nil
	}

	return v.scalar.Optional(s)
}

type unsigned struct {
	value   uint64
	present bool
}

// Uint returns an unsigned integer value.
func Uint(value uint64, present bool) Value {
	return unsigned{value: value, present: present}
}

func (v unsigned) Required(s Syntax) (string, error) {
	if !v.present {
		return "", ErrMissing
	}

	return s.Uint(v.value), nil
}

func (v unsigned) Optional(s Syntax) (string, error) {
	if !v.present {
		return s.None(TypeUint64), nil
	}

	return s.Some(TypeUint64, s.Uint(v.value)), nil
}

type list []string

// List returns a list of strings. A list is never missing; an empty list
// renders as an empty sequence literal.
func List(items ...string) Value {
	return list(slices.Clone(items))
}

func (v list) Required(s Syntax) (string, error) { return s.List(v), nil }

func (v list) Optional(s Syntax) (string, error) {
	return s.Some(TypeStringList, s.List(v)), nil
}

type table []Entry

// Map returns a map of strings built from entries, in the given order. A map
// is never missing, but rendering fails with [ErrFormat] if two entries
// share a key.
func Map(entries ...Entry) Value {
	return table(slices.Clone(entries))
}

// MapOf returns a map of strings holding the entries of m ordered by key.
func MapOf(m map[string]string) Value {
	return table(sortedEntries(m))
}

func (v table) build(s Syntax) (string, error) {
	seen := make(map[string]struct{}, len(v))

	for _, e := range v {
		if _, dup := seen[e.Key]; dup {
			return "", ErrFormat.
				Wrap(NewError("duplicate map key")).
				With(slog.String("key", e.Key))
		}

		seen[e.Key] = struct{}{}
	}

	return s.Map(v), nil
}

func (v table) Required(s Syntax) (string, error) { return v.build(s) }

func (v table) Optional(s Syntax) (string, error) {
	lit, err := v.build(s)
	if err != nil {
		return "", err
	}

	return s.Some(TypeStringMap, lit), nil
}
