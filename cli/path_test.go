package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanConfigPath(t *testing.T) {
	t.Chdir(t.TempDir())

	dflt := defaultConfigPath()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "none", args: nil, want: dflt},
		{name: "long", args: []string{"--config", "a.yaml", "kinds"}, want: "a.yaml"},
		{name: "long assigned", args: []string{"--config=b.yaml"}, want: "b.yaml"},
		{name: "short", args: []string{"-c", "c.yaml"}, want: "c.yaml"},
		{name: "short attached", args: []string{"-cd.yaml"}, want: "d.yaml"},
		{name: "after flags", args: []string{"--log-level", "debug", "-c", "e.yaml"}, want: "e.yaml"},
		{name: "terminated", args: []string{"--", "--config", "f.yaml"}, want: dflt},
		{name: "dangling", args: []string{"--config"}, want: dflt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanConfigPath(tt.args))
		})
	}
}

func TestUserConfigPath(t *testing.T) {
	path := userConfigPath()

	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, basePrefix(), filepath.Base(filepath.Dir(path)))
	assert.False(t, strings.HasPrefix(basePrefix(), "."))
}
