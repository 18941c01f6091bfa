package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/ardnew/builddetails/config"
	"github.com/ardnew/builddetails/log"
	"github.com/ardnew/builddetails/profile"
)

// Init writes a starter selection file.
type Init struct {
	Force bool `help:"Overwrite existing selection file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	path := configPathFrom(ctx)

	_, err := os.Stat(path)

	switch {
	case err == nil && !i.Force:
		return ErrWriteConfig.
			With(slog.String("file", path)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return ErrWriteConfig.With(slog.String("file", path)).Wrap(err)
	}

	file := selectionFrom(ctx)
	file.Flags = i.flags(ctx)

	buf, err := config.Starter(file)
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", path)).Wrap(err)
	}

	if err := os.WriteFile(path, buf, 0o644); err != nil { //nolint:gosec
		return ErrWriteConfig.With(slog.String("file", path)).Wrap(err)
	}

	log.InfoContext(ctx, "initialized selection file", slog.String("path", path))

	return nil
}

// flags returns the global flags given a value on the command line or in
// the current selection file, keyed by flag name.
func (i *Init) flags(ctx context.Context) map[string]any {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return nil
	}

	ignore := []string{"help", "version", ConfigIdentifier, profile.Tag}
	flags := map[string]any{}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || !flag.Set || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if val := ktx.FlagValue(flag); val != nil {
			flags[flag.Name] = val
		}
	}

	if len(flags) == 0 {
		return nil
	}

	return flags
}
