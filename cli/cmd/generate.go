package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ardnew/builddetails/config"
	"github.com/ardnew/builddetails/detail"
	"github.com/ardnew/builddetails/log"
)

// SourceDateEpoch is the environment variable that, when set to a Unix time,
// replaces the clock read by the timestamp detail.
const SourceDateEpoch = "SOURCE_DATE_EPOCH"

// Generate writes the selected build details to a file.
type Generate struct {
	Output  string `arg:"" help:"Generated file, relative to the output directory" optional:"" placeholder:"FILE"`
	OutDir  string `env:"OUT_DIR"       help:"Directory generated files are written to"  short:"o" type:"path"`
	Syntax  string `default:""          enum:",${syntaxEnum}"                             help:"Target syntax (overrides the selection file)"`
	Package string `env:"GOPACKAGE"     help:"Package clause of generated Go files"`
	Check   bool   `help:"Compare with the existing file instead of writing it"`
}

// Run executes the generate command.
func (g *Generate) Run(ctx context.Context) error {
	set, output, err := g.build(ctx)
	if err != nil {
		return err
	}

	if g.Check {
		return g.check(ctx, set, output)
	}

	return set.Generate(output)
}

// build resolves the set and output path from the selection file, the
// environment and the command flags.
func (g *Generate) build(ctx context.Context) (*detail.Set, string, error) {
	file := selectionFrom(ctx)

	if g.Syntax != "" {
		file.Syntax = g.Syntax
	}

	if g.Package != "" {
		file.Package = g.Package
	}

	syntax, err := file.TargetSyntax()
	if err != nil {
		return nil, "", err
	}

	output := g.Output
	if output == "" {
		output = file.Output
	}

	if output == "" || output == config.DefaultOutput {
		output = strings.TrimSuffix(config.DefaultOutput, filepath.Ext(config.DefaultOutput)) +
			syntax.Extension()
	}

	env := EnvironmentFrom(ctx)
	if g.OutDir != "" {
		env = detail.Overlay(env, detail.Env{detail.OutDir: g.OutDir})
	}

	opts := []detail.Option{detail.WithLogger(log.Default())}
	if clock, ok := clockFrom(ctx, env); ok {
		opts = append(opts, detail.WithClock(clock))
	}

	set, err := file.Build(env, opts...)
	if err != nil {
		return nil, "", err
	}

	log.DebugContext(ctx, "selected build details",
		slog.String("syntax", syntax.Name()),
		slog.Any("optional", set.Optional()),
		slog.Any("required", set.Required()),
	)

	return set, output, nil
}

// clockFrom returns a fixed clock when SOURCE_DATE_EPOCH holds a valid Unix
// time.
func clockFrom(ctx context.Context, env detail.Environment) (func() time.Time, bool) {
	raw, ok := detail.Lookup(env, SourceDateEpoch)
	if !ok || raw == "" {
		return nil, false
	}

	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		log.WarnContext(ctx, "ignoring invalid "+SourceDateEpoch,
			slog.String("value", raw),
		)

		return nil, false
	}

	at := time.Unix(secs, 0).UTC()

	return func() time.Time { return at }, true
}

// check renders the set into memory and fails with ErrStale, reporting a
// line diff, if the file at output differs.
func (g *Generate) check(ctx context.Context, set *detail.Set, output string) error {
	path, err := set.Path(output)
	if err != nil {
		return err
	}

	var want bytes.Buffer
	if _, err := set.WriteTo(&want); err != nil {
		return err
	}

	have, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrStale.With(
				slog.String("path", path),
				slog.Bool("exists", false),
			)
		}

		return ErrReadOutput.Wrap(err).With(slog.String("path", path))
	}

	if bytes.Equal(have, want.Bytes()) {
		log.InfoContext(ctx, "generated file is up to date", slog.String("path", path))

		return nil
	}

	if err := writeDiff(stderr(ctx), string(have), want.String()); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return ErrStale.With(slog.String("path", path))
}

// writeDiff writes the line diff from have to want, marking removed lines
// "-" and added lines "+".
func writeDiff(w io.Writer, have, want string) error {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(have, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	r := lipgloss.NewRenderer(w)
	del := r.NewStyle().Foreground(lipgloss.Color("1"))
	ins := r.NewStyle().Foreground(lipgloss.Color("2"))

	var buf strings.Builder

	for _, d := range diffs {
		var (
			mark  string
			style lipgloss.Style
		)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			mark, style = "-", del
		case diffmatchpatch.DiffInsert:
			mark, style = "+", ins
		default:
			continue
		}

		for line := range strings.Lines(d.Text) {
			buf.WriteString(style.Render(mark+strings.TrimSuffix(line, "\n")) + "\n")
		}
	}

	_, err := io.WriteString(w, buf.String())

	return err
}
