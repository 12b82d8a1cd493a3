package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// ErrConfigNotFound is returned when a config file was requested but is absent.
var ErrConfigNotFound = errors.New("config file not found")

// Load resolves the config file from CONFIG_PATH and delegates to LoadFile.
// Without CONFIG_PATH, ./config.yaml is used when present and environment
// variables plus defaults otherwise.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return LoadFile(defaultConfigPath)
	}
	return LoadFile("")
}

// LoadFile reads the YAML file at path, overlays environment variables and
// validates the result. An empty path skips the file entirely.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s: %w", path, ErrConfigNotFound)
		}
		// ReadConfig applies env overrides and env-default tags after the file.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
