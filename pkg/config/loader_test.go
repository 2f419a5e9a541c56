package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every external source at empty temp locations
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("GRUGUI_CONFIG_DIR", t.TempDir())
	return t.TempDir()
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	work := isolate(t)

	cfg, err := Load(Options{WorkDir: work})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "counter", cfg.Render.App)
	assert.Equal(t, "en", cfg.Render.Lang)
	assert.Equal(t, "grugui", cfg.Render.Title)
	assert.Equal(t, "dist", cfg.Export.Dir)
	assert.True(t, cfg.Play.ShowTree)
	assert.Equal(t, 0, cfg.Log.Verbosity)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, cfg, def)
}

func TestLayering(t *testing.T) {
	userDir := t.TempDir()
	t.Setenv("GRUGUI_CONFIG_DIR", userDir)
	work := t.TempDir()

	write(t, userDir, "grugui.toml", "[render]\napp = \"todo\"\ntitle = \"user\"\nlang = \"de\"\n")
	write(t, work, "grugui.toml", "[render]\ntitle = \"project\"\n[export]\ndir = \"out\"\n")
	explicit := write(t, t.TempDir(), "custom.toml", "[server]\naddr = \":9000\"\nread_timeout = \"1m\"\n")
	t.Setenv("GRUGUI_RENDER_LANG", "fr")
	t.Setenv("GRUGUI_SERVER_READ_TIMEOUT", "30s")

	cfg, err := Load(Options{
		File:      explicit,
		WorkDir:   work,
		Overrides: map[string]interface{}{"render.app": "tictactoe"},
	})
	require.NoError(t, err)

	assert.Equal(t, "tictactoe", cfg.Render.App, "flag beats user file")
	assert.Equal(t, "project", cfg.Render.Title, "project beats user file")
	assert.Equal(t, "fr", cfg.Render.Lang, "env beats user file")
	assert.Equal(t, "out", cfg.Export.Dir)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout, "env beats explicit file")
}

func TestSkipUser(t *testing.T) {
	userDir := t.TempDir()
	t.Setenv("GRUGUI_CONFIG_DIR", userDir)
	write(t, userDir, "grugui.toml", "[render]\napp = \"todo\"\n")

	cfg, err := Load(Options{WorkDir: t.TempDir(), SkipUser: true})
	require.NoError(t, err)
	assert.Equal(t, "counter", cfg.Render.App)
}

func TestHiddenProjectFile(t *testing.T) {
	work := isolate(t)
	write(t, work, ".grugui.toml", "[play]\nshow_tree = false\n")

	cfg, err := Load(Options{WorkDir: work})
	require.NoError(t, err)
	assert.False(t, cfg.Play.ShowTree)
}

func TestEnvBool(t *testing.T) {
	work := isolate(t)
	t.Setenv("GRUGUI_PLAY_SHOW_TREE", "false")
	t.Setenv("GRUGUI_LOG_VERBOSITY", "2")

	cfg, err := Load(Options{WorkDir: work})
	require.NoError(t, err)
	assert.False(t, cfg.Play.ShowTree)
	assert.Equal(t, 2, cfg.Log.Verbosity)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, work string) Options
		errCode errors.ErrorCode
	}{
		{
			name: "missing explicit file",
			setup: func(t *testing.T, work string) Options {
				return Options{WorkDir: work, File: filepath.Join(work, "nope.toml")}
			},
			errCode: errors.ErrConfigLoad,
		},
		{
			name: "malformed toml",
			setup: func(t *testing.T, work string) Options {
				write(t, work, "grugui.toml", "[server\naddr =")
				return Options{WorkDir: work}
			},
			errCode: errors.ErrConfigParse,
		},
		{
			name: "bad duration",
			setup: func(t *testing.T, work string) Options {
				return Options{WorkDir: work, Overrides: map[string]interface{}{"server.read_timeout": "soon"}}
			},
			errCode: errors.ErrConfigParse,
		},
		{
			name: "empty address",
			setup: func(t *testing.T, work string) Options {
				return Options{WorkDir: work, Overrides: map[string]interface{}{"server.addr": ""}}
			},
			errCode: errors.ErrConfigParse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work := isolate(t)
			_, err := Load(tt.setup(t, work))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.errCode), "got %v", err)
		})
	}
}

func TestValidate(t *testing.T) {
	base, err := Default()
	require.NoError(t, err)
	require.NoError(t, Validate(base))

	bad := *base
	bad.Log.Verbosity = -1
	assert.Error(t, Validate(&bad))

	bad = *base
	bad.Render.App = ""
	assert.Error(t, Validate(&bad))
}

func TestDump(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Render.App = "todo"

	out, err := Dump(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[server]")
	assert.Regexp(t, `addr = ['"]localhost:8080['"]`, out)
	assert.Regexp(t, `read_timeout = ['"]5s['"]`, out)
	assert.Regexp(t, `app = ['"]todo['"]`, out)
	assert.Contains(t, out, "show_tree = true")

	// the dump is a valid config file
	work := isolate(t)
	write(t, work, "grugui.toml", out)
	again, err := Load(Options{WorkDir: work})
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
