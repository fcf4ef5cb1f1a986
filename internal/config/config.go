// Package config loads runtime settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting.
type Config struct {
	// Seed for the world's random source; 0 picks one from the clock.
	Seed int64 `toml:"seed" env:"SEED"`
	// LevelFile is a YAML level set; empty uses the built-in levels.
	LevelFile string `toml:"level_file" env:"LEVEL_FILE"`
	// Level names the entry to start on; empty means the first in the set.
	Level string `toml:"level" env:"LEVEL"`

	Logging LoggingConfig `toml:"logging" envPrefix:"LOG_"`
	Server  ServerConfig  `toml:"server" envPrefix:"SERVER_"`
}

// LoggingConfig selects the zap level, encoding and destination.
type LoggingConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"` // "json" or "console"
	// File receives log output; empty discards it for terminal play,
	// where stderr would corrupt the screen.
	File string `toml:"file" env:"FILE"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Port    int    `toml:"port" env:"PORT"`
	HostKey string `toml:"host_key" env:"HOST_KEY"`
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ROGUE_"

// Load reads path over the defaults, then applies ROGUE_* environment
// overrides. A missing file is not an error when path is empty or the
// default name.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DefaultPath is the config file looked for when none is given.
const DefaultPath = "roguelike.toml"

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Port:    2222,
			HostKey: "server_host_key",
		},
	}
}
