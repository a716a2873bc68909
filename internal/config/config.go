// Package config handles the TOML bootstrap file that points at the database.
// Everything else (shift windows, notification options, theme) lives as
// settings rows inside the database itself so it stays hot-reloadable.
package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/caretrack/caretrack/internal/constants"
)

const DefaultConfigFileName = "config.toml"

type Config struct {
	// DBPath is a SQLite file path, or "keyring" to read a PostgreSQL
	// connection string from the OS keyring.
	DBPath string `toml:"db_path"`
	Debug  bool   `toml:"debug"`
}

// Dir returns the application's configuration directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, constants.AppName), nil
}

// LoadOrCreate reads the bootstrap config, writing one with defaults when the
// file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return cfg, err
		}
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultConfig().DBPath
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath: constants.DefaultConfigPath,
	}
}
