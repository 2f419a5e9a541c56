package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/logging"
	"github.com/arthur-debert/grugui/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	toml2 "github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes environment overrides
const EnvPrefix = "GRUGUI_"

// ProjectFiles are looked up in the working directory, first match wins
var ProjectFiles = []string{"grugui.toml", ".grugui.toml"}

// Options select the optional sources
type Options struct {
	// File is an explicit config file. It must exist.
	File string
	// WorkDir is searched for ProjectFiles. Defaults to ".".
	WorkDir string
	// Overrides are dotted keys set from flags
	Overrides map[string]interface{}
	// SkipUser ignores the XDG user config file
	SkipUser bool
}

// Load merges every source and decodes the result
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(bytesProvider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUser {
		if err := loadIfExists(k, paths.New().ConfigFilePath()); err != nil {
			return nil, err
		}
	}

	// 3. Project config
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	for _, name := range ProjectFiles {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			break
		}
	}

	// 4. Explicit file
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file not found: %s", opts.File).
				WithDetail("path", opts.File)
		}
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
	}

	// 5. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 6. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug().Strs("keys", k.Keys()).Msg("Configuration loaded")
	return cfg, nil
}

// Default returns the embedded defaults alone
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(bytesProvider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return decode(k)
}

// envKey maps GRUGUI_SERVER_READ_TIMEOUT to server.read_timeout. Only the
// first underscore separates section and key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func loadIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return loadFile(k, path)
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// Validate checks values the loaders cannot
func Validate(cfg *Config) error {
	switch {
	case cfg.Server.Addr == "":
		return errors.New(errors.ErrConfigParse, "server.addr must not be empty")
	case cfg.Server.ReadTimeout <= 0:
		return errors.Newf(errors.ErrConfigParse, "server.read_timeout must be positive, got %s", cfg.Server.ReadTimeout)
	case cfg.Render.App == "":
		return errors.New(errors.ErrConfigParse, "render.app must not be empty")
	case cfg.Export.Dir == "":
		return errors.New(errors.ErrConfigParse, "export.dir must not be empty")
	case cfg.Log.Verbosity < 0:
		return errors.Newf(errors.ErrConfigParse, "log.verbosity must not be negative, got %d", cfg.Log.Verbosity)
	}
	return nil
}

// Dump serializes cfg as TOML
func Dump(cfg *Config) (string, error) {
	out, err := toml2.Marshal(cfg.toMap())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(out), nil
}
