package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/grugui/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for grugui
	EnvConfigDir = "GRUGUI_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for grugui
	EnvStateDir = "GRUGUI_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under each XDG base
	AppDirName = "grugui"

	// ConfigFileName is the user configuration file
	ConfigFileName = "grugui.toml"

	// LogFileName is the name of the log file
	LogFileName = "grugui.log"
)

// Paths gives access to grugui's directories.
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves the directories from the environment. The xdg package
// caches the base directories, so they are reloaded first to honor
// changes made since process start.
func New() *Paths {
	xdg.Reload()
	p := &Paths{
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		stateDir:  filepath.Join(xdg.StateHome, AppDirName),
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	}
	return p
}

// ConfigDir returns the grugui config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFilePath returns the user config file path
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StateDir returns the grugui state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path to the grugui log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := HomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	// ~something (not the user's home)
	return path
}

// HomeDir returns the user's home directory, falling back to $HOME.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		if env := os.Getenv(EnvHome); env != "" {
			return env, nil
		}
		return "", errors.Wrap(err, errors.ErrNotFound, "failed to get home directory")
	}
	return home, nil
}
