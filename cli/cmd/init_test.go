package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/builddetails/config"
	"github.com/ardnew/builddetails/detail"
)

func TestInitRun(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create_new", force: false, exists: false},
		{name: "overwrite_with_force", force: true, exists: true},
		{name: "fail_without_force", force: false, exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.DefaultPath)

			if tt.exists {
				require.NoError(t, os.WriteFile(path, []byte("existing content"), 0o600))
			}

			args := []string{"init"}
			if tt.force {
				args = append(args, "--force")
			}

			h := parse(t, detail.Env{}, config.Default(), args...)
			h.ctx = WithConfigPath(h.ctx, path)

			err := h.cli.Init.Run(h.ctx)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, ErrWriteConfig)

				got, rerr := os.ReadFile(path)
				require.NoError(t, rerr)
				assert.Equal(t, "existing content", string(got))

				return
			}

			require.NoError(t, err)

			f, err := config.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, config.Default(), f)
		})
	}
}

func TestInit_KeepsSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	selection := config.File{
		Preset:  config.PresetNone,
		Syntax:  "go",
		Output:  "details.go",
		Require: []string{"version"},
		Rules:   []config.Rule{{When: `profile == "release"`, Include: []string{"cfg"}}},
	}

	h := parse(t, detail.Env{}, selection, "init")
	h.ctx = WithConfigPath(h.ctx, path)
	require.NoError(t, h.cli.Init.Run(h.ctx))

	f, err := config.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, selection.Require, f.Require)
	assert.Equal(t, selection.Rules, f.Rules)
	assert.Equal(t, "details.go", f.Output)
}
