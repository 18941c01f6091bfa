package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/builddetails/cli/cmd"
	"github.com/ardnew/builddetails/config"
	"github.com/ardnew/builddetails/detail"
)

func noExit(t *testing.T) func(int) {
	t.Helper()

	return func(code int) { t.Fatalf("unexpected exit %d", code) }
}

func TestRun_Generate(t *testing.T) {
	restoreLogger(t)

	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	t.Chdir(dir)

	require.NoError(t, os.Mkdir(out, 0o755))
	require.NoError(t, os.WriteFile(config.DefaultPath,
		[]byte("preset: none\nrequire: [version]\n"), 0o644))

	ctx := cmd.WithEnvironment(t.Context(), detail.Env{"CARGO_PKG_VERSION": "1.2.3"})

	require.NoError(t, Run(ctx, noExit(t), "generate", "--out-dir", out))

	got, err := os.ReadFile(filepath.Join(out, config.DefaultOutput))
	require.NoError(t, err)
	assert.Equal(t,
		"pub const VERSION: &'static str = env!(\"CARGO_PKG_VERSION\");\n",
		string(got))
}

func TestRun_FlagsFromSelection(t *testing.T) {
	restoreLogger(t)

	dir := t.TempDir()
	t.Chdir(dir)

	sel := filepath.Join(dir, "sel.yaml")
	require.NoError(t, os.WriteFile(sel,
		[]byte("preset: none\ninclude: [profile]\nflags:\n  out-dir: "+dir+"\n  syntax: go\n"),
		0o644))

	require.NoError(t, Run(t.Context(), noExit(t), "--config", sel, "generate"))

	got, err := os.ReadFile(filepath.Join(dir, "build_details.go"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "package main\n")
}

func TestRun_UnknownSelectionFlag(t *testing.T) {
	restoreLogger(t)

	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(config.DefaultPath,
		[]byte("flags:\n  outdir: gen\n"), 0o644))

	err := Run(t.Context(), noExit(t), "kinds")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestRun_Init(t *testing.T) {
	restoreLogger(t)

	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, Run(t.Context(), noExit(t), "--log-level", "debug", "init"))

	got, err := os.ReadFile(config.DefaultPath)
	require.NoError(t, err)
	assert.Contains(t, string(got), "log-level: debug")
	assert.Contains(t, string(got), "preset: default")

	err = Run(t.Context(), noExit(t), "init")
	require.ErrorIs(t, err, cmd.ErrFileExists)
}
