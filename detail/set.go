package detail

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// OutDir is the environment variable naming the directory generated files
// are written to.
const OutDir = "OUT_DIR"

// Set selects which details are generated, each either optional or
// required. A kind is never both.
//
// A Set is meant for a single generation pass and is not safe for
// concurrent use.
type Set struct {
	optional map[Kind]struct{}
	required map[Kind]struct{}
	options
}

func newSet(opts []Option, optional, required []Kind) *Set {
	s := &Set{
		optional: make(map[Kind]struct{}, kindCount),
		required: make(map[Kind]struct{}, kindCount),
		options:  makeOptions(opts...),
	}

	for _, k := range optional {
		s.Include(k)
	}

	for _, k := range required {
		s.Require(k)
	}

	return s
}

func allKinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := range Kinds() {
		kinds = append(kinds, k)
	}

	return kinds
}

// Default returns a set with Timestamp, Version, Profile and RustFlags
// optional.
func Default(opts ...Option) *Set {
	return newSet(opts, []Kind{Timestamp, Version, Profile, RustFlags}, nil)
}

// All returns a set with every kind optional.
func All(opts ...Option) *Set {
	return newSet(opts, allKinds(), nil)
}

// None returns an empty set.
func None(opts ...Option) *Set {
	return newSet(opts, nil, nil)
}

// RequireAll returns a set with every kind required.
func RequireAll(opts ...Option) *Set {
	return newSet(opts, nil, allKinds())
}

// Require makes k required.
func (s *Set) Require(k Kind) *Set {
	delete(s.optional, k)
	s.required[k] = struct{}{}

	return s
}

// Include makes k optional.
func (s *Set) Include(k Kind) *Set {
	delete(s.required, k)
	s.optional[k] = struct{}{}

	return s
}

// Exclude removes k from the set.
func (s *Set) Exclude(k Kind) *Set {
	delete(s.required, k)
	delete(s.optional, k)

	return s
}

// Optional returns the optional kinds in declaration order.
func (s *Set) Optional() []Kind { return ordered(s.optional) }

// Required returns the required kinds in declaration order.
func (s *Set) Required() []Kind { return ordered(s.required) }

// Syntax returns the target syntax of the set.
func (s *Set) Syntax() Syntax { return s.syntax }

func ordered(m map[Kind]struct{}) []Kind {
	kinds := make([]Kind, 0, len(m))

	for k := range Kinds() {
		if _, ok := m[k]; ok {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// WriteTo writes the syntax header followed by one declaration line per
// optional kind, then one per required kind, each group in declaration
// order. It implements [io.WriterTo].
//
// WriteTo stops at the first failure, leaving what was already written in
// w: a required kind without a value fails with [MissingDetail].
func (s *Set) WriteTo(w io.Writer) (n int64, err error) {
	cat := NewCatalog(s.env, s.clock)

	write := func(text string) error {
		m, err := io.WriteString(w, text)
		n += int64(m)

		if err != nil {
			return ErrIO.Wrap(err)
		}

		return nil
	}

	if header := s.syntax.Header(); header != "" {
		if err := write(header); err != nil {
			return n, err
		}
	}

	for _, k := range s.Optional() {
		d, err := cat.Resolve(k)
		if err != nil {
			return n, err
		}

		line, err := d.RenderOptional(s.syntax)
		if err != nil {
			return n, err
		}

		s.logger.Debug("render optional detail",
			slog.String("kind", k.String()),
			slog.String("name", d.Name),
		)

		if err := write(line + "\n"); err != nil {
			return n, err
		}
	}

	for _, k := range s.Required() {
		d, err := cat.Resolve(k)
		if err != nil {
			return n, err
		}

		line, err := d.RenderRequired(s.syntax)
		if err != nil {
			return n, err
		}

		s.logger.Debug("render required detail",
			slog.String("kind", k.String()),
			slog.String("name", d.Name),
		)

		if err := write(line + "\n"); err != nil {
			return n, err
		}
	}

	return n, nil
}

// Path returns the path of a generated file: rel joined to the directory
// named by [OutDir]. An absolute rel is returned unchanged. It fails with
// [MissingEnv] if [OutDir] is unset, even when rel is absolute.
func (s *Set) Path(rel string) (string, error) {
	dir, ok := Lookup(s.env, OutDir)
	if !ok {
		return "", MissingEnv(OutDir)
	}

	if filepath.IsAbs(rel) {
		return rel, nil
	}

	return filepath.Join(dir, rel), nil
}

// Generate creates or truncates the file at [Set.Path] of rel and writes the
// set to it. Output is not atomic: on failure the file may hold a partial
// write.
func (s *Set) Generate(rel string) (err error) {
	path, err := s.Path(rel)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return ErrIO.Wrap(err).With(slog.String("path", path))
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = ErrIO.Wrap(cerr).With(slog.String("path", path))
		}
	}()

	n, err := s.WriteTo(file)
	if err != nil {
		return err
	}

	s.logger.Info("generated build details",
		slog.String("path", path),
		slog.Int64("bytes", n),
		slog.Int("optional", len(s.optional)),
		slog.Int("required", len(s.required)),
	)

	return nil
}
