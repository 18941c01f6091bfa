package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
flags:
  log-level: debug
  log-pretty: false
preset: none
syntax: go
package: buildinfo
output: details.go
require: [profile]
include: [cfg, FEATURES]
exclude: [rust-flags]
rules:
  - when: 'env("PROFILE") == "release"'
    require: [version]
`

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, PresetNone, f.Preset)
	assert.Equal(t, "go", f.Syntax)
	assert.Equal(t, "buildinfo", f.Package)
	assert.Equal(t, "details.go", f.Output)
	assert.Equal(t, []string{"profile"}, f.Require)
	assert.Equal(t, []string{"cfg", "FEATURES"}, f.Include)
	assert.Equal(t, []string{"rust-flags"}, f.Exclude)
	assert.Equal(t, "debug", f.Flags["log-level"])
	assert.Equal(t, false, f.Flags["log-pretty"])
	require.Len(t, f.Rules, 1)
	assert.Equal(t, []string{"version"}, f.Rules[0].Require)
}

func TestLoad_Empty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
}

func TestLoad_FillsDefaults(t *testing.T) {
	f, err := Load(strings.NewReader("require: [version]\n"))
	require.NoError(t, err)

	assert.Equal(t, PresetDefault, f.Preset)
	assert.Equal(t, "rust", f.Syntax)
	assert.Equal(t, DefaultOutput, f.Output)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("presets: all\n"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoad_InvalidRule(t *testing.T) {
	_, err := Load(strings.NewReader("rules:\n  - when: 'profile =='\n"))
	assert.ErrorIs(t, err, ErrRule)

	_, err = Load(strings.NewReader("rules:\n  - when: 'profile'\n"))
	assert.ErrorIs(t, err, ErrRule, "non-boolean condition")
}

func TestReadFile_Missing(t *testing.T) {
	f, err := ReadFile(filepath.Join(t.TempDir(), DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "details.go", f.Output)
}

func TestReadFile_ParseErrorKeepsSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("preset: [unterminated\n"), 0o600))

	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrParse)
}

func TestMarshal_RoundTrip(t *testing.T) {
	want, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	buf, err := Marshal(want)
	require.NoError(t, err)

	got, err := Load(strings.NewReader(string(buf)))
	require.NoError(t, err)
	assert.Equal(t, want.Require, got.Require)
	assert.Equal(t, want.Rules, got.Rules)
	assert.Equal(t, want.Output, got.Output)
}

func TestStarter_Comments(t *testing.T) {
	buf, err := Starter(Default())
	require.NoError(t, err)

	text := string(buf)
	assert.Contains(t, text, "# Initial selection")
	assert.Contains(t, text, "preset: default")
	assert.Contains(t, text, "output: build_details.rs")

	f, err := Load(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
}
