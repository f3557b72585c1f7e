package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default limits consumed by the path-search layer. An installation can
// override them in the config file; the layer itself only consumes
// them.
const (
	DefaultMaxPathLength  = 1024
	DefaultMaxPathMatches = 64
)

// Config represents the optional dbshift configuration file.
type Config struct {
	Limits LimitsConfig `toml:"limits"`
	Log    LogConfig    `toml:"log"`
}

// LimitsConfig bounds path handling.
type LimitsConfig struct {
	MaxPathLength  *int `toml:"max_path_length"`
	MaxPathMatches *int `toml:"max_path_matches"`
}

// LogConfig holds logging defaults applied when the matching CLI flags
// are not set.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// MaxPathLength returns the configured path length limit, or the
// default when unset or nonsensical.
func (c Config) MaxPathLength() int {
	if c.Limits.MaxPathLength != nil && *c.Limits.MaxPathLength > 0 {
		return *c.Limits.MaxPathLength
	}
	return DefaultMaxPathLength
}

// MaxPathMatches returns the configured PATH match limit, or the
// default when unset or nonsensical.
func (c Config) MaxPathMatches() int {
	if c.Limits.MaxPathMatches != nil && *c.Limits.MaxPathMatches > 0 {
		return *c.Limits.MaxPathMatches
	}
	return DefaultMaxPathMatches
}

// ConfigPath returns the resolved path to the config file.
func ConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "dbshift", "config.toml")
}

// Load reads the config file from the XDG path. Returns a zero Config
// (no error) if the file does not exist. Config is always optional.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return Config{}, nil
	}

	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}
