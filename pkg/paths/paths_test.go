package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUsesXDG(t *testing.T) {
	cfg := t.TempDir()
	state := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfg)
	t.Setenv("XDG_STATE_HOME", state)
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")

	p := New()
	assert.Equal(t, filepath.Join(cfg, "grugui"), p.ConfigDir())
	assert.Equal(t, filepath.Join(cfg, "grugui", "grugui.toml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(state, "grugui"), p.StateDir())
	assert.Equal(t, filepath.Join(state, "grugui", "grugui.log"), p.LogFilePath())
}

func TestNewOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigDir, "/custom/config")
	t.Setenv(EnvStateDir, "~/state")

	p := New()
	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, filepath.Join(home, "state"), p.StateDir())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/grugui", "/etc/grugui"},
		{"tilde", "~", home},
		{"tilde slash", "~/x/y", filepath.Join(home, "x", "y")},
		{"other user", "~bob/x", "~bob/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
