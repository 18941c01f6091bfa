package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/builddetails/pkg"
)

// DefaultPath is the name of the selection file looked up in the working
// directory.
const DefaultPath = "." + pkg.Name + ".yaml"

// DefaultOutput is the generated file name used when none is configured.
const DefaultOutput = "build_details.rs"

// Preset names accepted by [File.Preset].
const (
	PresetDefault    = "default"
	PresetAll        = "all"
	PresetNone       = "none"
	PresetRequireAll = "require-all"
)

// Presets returns the preset names in documentation order.
func Presets() []string {
	return []string{PresetDefault, PresetAll, PresetNone, PresetRequireAll}
}

// File is the decoded selection file.
type File struct {
	Flags   map[string]any `yaml:"flags,omitempty"`
	Preset  string         `yaml:"preset,omitempty"`
	Syntax  string         `yaml:"syntax,omitempty"`
	Package string         `yaml:"package,omitempty"`
	Output  string         `yaml:"output,omitempty"`
	Require []string       `yaml:"require,omitempty"`
	Include []string       `yaml:"include,omitempty"`
	Exclude []string       `yaml:"exclude,omitempty"`
	Rules   []Rule         `yaml:"rules,omitempty"`
}

// Default returns the selection used when no file exists.
func Default() File {
	return File{
		Preset: PresetDefault,
		Syntax: "rust",
		Output: DefaultOutput,
	}
}

// fill sets the unset scalar fields to their defaults.
func (f File) fill() File {
	def := Default()

	if f.Preset == "" {
		f.Preset = def.Preset
	}

	if f.Syntax == "" {
		f.Syntax = def.Syntax
	}

	if f.Output == "" {
		f.Output = def.Output
	}

	return f
}

// Load decodes a selection file from r. Unknown fields are rejected, and
// every rule condition is compiled so that syntax errors surface before any
// generation. An empty document yields [Default].
func Load(r io.Reader) (File, error) {
	var f File

	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}

		return File{}, ErrParse.Wrap(err)
	}

	for i, rule := range f.Rules {
		if _, err := rule.compile(); err != nil {
			return File{}, ErrRule.Wrap(err).With(
				slog.Int("rule", i),
				slog.String("when", rule.When),
			)
		}
	}

	return f.fill(), nil
}

// ReadFile loads the selection file at path. A file that does not exist
// yields [Default].
func ReadFile(path string) (File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return File{}, ErrRead.Wrap(err).With(slog.String("path", path))
	}
	defer file.Close()

	f, err := Load(file)
	if err != nil {
		var ee *Error
		if errors.As(err, &ee) {
			return File{}, ee.With(slog.String("path", path))
		}

		return File{}, err
	}

	return f, nil
}

// Marshal encodes f as YAML.
func Marshal(f File) ([]byte, error) {
	buf, err := yaml.MarshalWithOptions(f, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, ErrMarshal.Wrap(err)
	}

	return buf, nil
}

// Starter returns a commented selection file equivalent to f, suitable as a
// starting point for editing.
func Starter(f File) ([]byte, error) {
	comments := yaml.CommentMap{
		"$.preset": []*yaml.Comment{
			yaml.HeadComment(" Initial selection: default, all, none or require-all."),
		},
		"$.syntax": []*yaml.Comment{
			yaml.HeadComment(" Generated language: rust or go."),
		},
		"$.output": []*yaml.Comment{
			yaml.HeadComment(" File written in the directory named by OUT_DIR."),
		},
	}

	if len(f.Rules) > 0 {
		comments["$.rules"] = []*yaml.Comment{
			yaml.HeadComment(" Rules apply in order when their condition holds."),
		}
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf,
		yaml.Indent(2),
		yaml.IndentSequence(true),
		yaml.WithComment(comments),
	)

	if err := enc.Encode(f); err != nil {
		return nil, ErrMarshal.Wrap(err)
	}

	if err := enc.Close(); err != nil {
		return nil, ErrMarshal.Wrap(err)
	}

	return buf.Bytes(), nil
}
