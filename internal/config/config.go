package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	ReadTimeoutMs int  `toml:"read-timeout-ms"`
	ShowBanner    bool `toml:"show-banner"`
}

type LogOptions struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Log    LogOptions    `toml:"log"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			ReadTimeoutMs: 100,
			ShowBanner:    true,
		},
	}
}

// ReadTimeout is the bounded wait of a single raw terminal read.
func (c Config) ReadTimeout() time.Duration {
	if c.Editor.ReadTimeoutMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.Editor.ReadTimeoutMs) * time.Millisecond
}

// Load reads config.toml from the config directory on top of the defaults.
// A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, err
	}

	if userCfg.Editor.ReadTimeoutMs > 0 {
		cfg.Editor.ReadTimeoutMs = userCfg.Editor.ReadTimeoutMs
	}
	if md.IsDefined("editor", "show-banner") {
		cfg.Editor.ShowBanner = userCfg.Editor.ShowBanner
	}
	if userCfg.Log.Debug {
		cfg.Log.Debug = true
	}
	if userCfg.Log.File != "" {
		cfg.Log.File = userCfg.Log.File
	}
	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("TEDIT_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "tedit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tedit"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
