package config

import "time"

// Config is the effective configuration
type Config struct {
	Server ServerConfig `koanf:"server"`
	Render RenderConfig `koanf:"render"`
	Export ExportConfig `koanf:"export"`
	Play   PlayConfig   `koanf:"play"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig configures `grugui serve`
type ServerConfig struct {
	Addr        string        `koanf:"addr"`
	ReadTimeout time.Duration `koanf:"read_timeout"`
}

// RenderConfig configures page rendering
type RenderConfig struct {
	App   string `koanf:"app"`
	Lang  string `koanf:"lang"`
	Title string `koanf:"title"`
}

// ExportConfig configures `grugui export`
type ExportConfig struct {
	Dir string `koanf:"dir"`
}

// PlayConfig configures `grugui play`
type PlayConfig struct {
	ShowTree bool `koanf:"show_tree"`
}

// LogConfig configures logging
type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// toMap is the inverse of decoding, used for dumping
func (c *Config) toMap() map[string]interface{} {
	return map[string]interface{}{
		"server": map[string]interface{}{
			"addr":         c.Server.Addr,
			"read_timeout": c.Server.ReadTimeout.String(),
		},
		"render": map[string]interface{}{
			"app":   c.Render.App,
			"lang":  c.Render.Lang,
			"title": c.Render.Title,
		},
		"export": map[string]interface{}{
			"dir": c.Export.Dir,
		},
		"play": map[string]interface{}{
			"show_tree": c.Play.ShowTree,
		},
		"log": map[string]interface{}{
			"verbosity": c.Log.Verbosity,
		},
	}
}
