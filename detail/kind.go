package detail

//go:generate go tool stringer --linecomment --type Kind,Type --output kind_string.go

import (
	"errors"
	"iter"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Kind identifies a build-time fact that can be embedded as a constant.
//
// The set of kinds is closed. Declaration order is the order in which
// details are emitted by [Set.WriteTo].
type Kind int

const (
	Timestamp   Kind = iota // timestamp
	Version                 // version
	Profile                 // profile
	RustFlags               // rust-flags
	Name                    // name
	Authors                 // authors
	Description             // description
	Homepage                // homepage
	OptLevel                // opt-level
	Cfg                     // cfg
	Features                // features

	kindCount = iota
)

// Kinds returns an iterator over every kind in declaration order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := range Kind(kindCount) {
			if !yield(k) {
				return
			}
		}
	}
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// Constant returns the name of the constant k is emitted as (e.g. VERSION).
func (k Kind) Constant() string {
	if !k.Valid() {
		return ""
	}

	return catalog[k].constant
}

// Type returns the semantic type of the constant k is emitted as.
func (k Kind) Type() Type {
	if !k.Valid() {
		return TypeString
	}

	return catalog[k].typ
}

// Source describes where the value of k is read from: an environment
// variable, a variable prefix followed by "*", or "clock".
func (k Kind) Source() string {
	if !k.Valid() {
		return ""
	}

	e := catalog[k]

	switch e.source {
	case sourceClock:
		return "clock"
	case sourcePrefixMap, sourcePrefixList:
		return e.variable + "*"
	default:
		return e.variable
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, ErrUnknownKind.For(k.String())
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// ParseKind returns the kind named s.
//
// Matching ignores case and accepts either the kind name ("rust-flags") or
// its constant name ("RUST_FLAGS"). When nothing matches, the returned error
// carries the closest kind name as a "suggest" attribute.
func ParseKind(s string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")

	for k := range Kinds() {
		if norm == k.String() {
			return k, nil
		}
	}

	err := ErrUnknownKind.For(s)

	if suggest, ok := suggestKind(norm); ok {
		err = err.With(slog.String("suggest", suggest))
	}

	return 0, err
}

// Suggestion returns the kind name suggested by err, if err came from
// [ParseKind] and a close match exists.
func Suggestion(err error) (string, bool) {
	var ee *Error
	if !errors.As(err, &ee) {
		return "", false
	}

	for _, attr := range ee.attrs {
		if attr.Key == "suggest" {
			return attr.Value.String(), true
		}
	}

	return "", false
}

func suggestKind(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	names := make([]string, 0, kindCount)
	for k := range Kinds() {
		names = append(names, k.String())
	}

	matches := fuzzy.Find(s, names)
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}
