package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/builddetails/config"
)

// ErrUnknownFlag reports a key of the flags section that names no flag.
var ErrUnknownFlag = config.NewError("unknown flag in selection file")

// resolve returns a [kong.ConfigurationLoader] that decodes a selection file,
// stores it in dst for the commands, and resolves flag defaults from its
// flags section.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(&file), "/path/to/.builddetails.yaml")
//
// Flag names are matched as written or with hyphens replaced by
// underscores:
//
//	flags:
//	  log-level: debug
//	  log_format: text
//	  out-dir: target/generated
//
// Command-line flags and environment variables override these values.
func resolve(dst *config.File) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		f, err := config.Load(r)
		if err != nil {
			return nil, err
		}

		if dst != nil {
			*dst = f
		}

		return flags(f.Flags), nil
	}
}

// flags implements [kong.Resolver] for the flags section of a selection
// file.
type flags map[string]any

// Validate implements [kong.Resolver]. Every key must name a flag of the
// application or one of its commands.
func (r flags) Validate(app *kong.Application) error {
	known := map[string]struct{}{}

	var visit func(*kong.Node)

	visit = func(n *kong.Node) {
		for _, flag := range n.Flags {
			known[flag.Name] = struct{}{}
		}

		for _, child := range n.Children {
			visit(child)
		}
	}

	visit(app.Node)

	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}

	for key := range r {
		if _, ok := known[strings.ReplaceAll(key, "_", "-")]; ok {
			continue
		}

		err := ErrUnknownFlag.With(slog.String("flag", key))
		if matches := fuzzy.Find(key, names); len(matches) > 0 {
			err = err.With(slog.String("suggest", matches[0].Str))
		}

		return err
	}

	return nil
}

// Resolve implements [kong.Resolver].
func (r flags) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	value, ok := r[flag.Name]
	if !ok {
		value, ok = r[strings.ReplaceAll(flag.Name, "-", "_")]
	}

	if !ok {
		// Not found - return nil to let Kong use defaults
		return nil, nil
	}

	return native(value), nil
}

// native converts decoded YAML scalars to the forms kong mappers accept.
// Kong requires numbers as strings for parsing.
func native(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = native(e)
		}

		return out
	case string, bool, nil:
		return v
	default:
		return fmt.Sprint(v)
	}
}
