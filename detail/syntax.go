package detail

import (
	"slices"
	"strings"
)

// Type is the semantic type of an emitted constant. A [Syntax] maps it to
// the type label of its target language.
type Type int

const (
	TypeString     Type = iota // string
	TypeUint64                 // uint64
	TypeStringList             // list
	TypeStringMap              // map
)

// Composite reports whether t is a collection type.
func (t Type) Composite() bool {
	return t == TypeStringList || t == TypeStringMap
}

// Entry is one key/value pair of a map literal.
type Entry struct {
	Key   string
	Value string
}

// Syntax renders literals and constant declarations in a target language.
//
// Implementations never fail; validation of the values being rendered is
// the responsibility of [Value].
type Syntax interface {
	// Name identifies the syntax (e.g. "rust").
	Name() string
	// Extension is the conventional file name extension, with leading dot.
	Extension() string
	// Header is written once before any declaration. It may be empty.
	Header() string

	// Type returns the type label of t.
	Type(t Type) string
	// Declare returns the declaration of a constant holding value.
	Declare(name string, t Type, value string) string
	// DeclareOptional returns the declaration of a constant holding a
	// presence-wrapped value.
	DeclareOptional(name string, t Type, value string) string
	// Some wraps a present value of type t.
	Some(t Type, value string) string
	// None is the literal of an absent value of type t.
	None(t Type) string

	Quote(s string) string
	Uint(v uint64) string
	List(items []string) string
	Map(entries []Entry) string

	// Deferred returns an expression resolving variable when the consuming
	// program is compiled. It returns false when the language has no such
	// expression and the value must be embedded instead.
	Deferred(variable string) (string, bool)
	// DeferredOptional is the presence-wrapped form of Deferred.
	DeferredOptional(variable string) (string, bool)
}

// Syntaxes returns the names accepted by [SyntaxByName].
func Syntaxes() []string {
	return []string{rustName, goName}
}

// SyntaxByName returns the syntax with the given name. The Go package clause
// is set to pkg; pkg is ignored by other syntaxes.
func SyntaxByName(name, pkg string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case rustName, "":
		return Rust(), nil
	case goName, "golang":
		return Go(pkg), nil
	default:
		return nil, ErrUnknownSyntax.For(name).
			Wrap(NewError("expected one of " + strings.Join(Syntaxes(), ", ")))
	}
}

// sortedEntries returns the entries of m ordered by key.
func sortedEntries(m map[string]string) []Entry {
	entries := make([]Entry, 0, len(m))

	for key, value := range m {
		entries = append(entries, Entry{Key: key, Value: value})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Key, b.Key)
	})

	return entries
}
