// Package config loads cubemoves settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment defaults for the command-line tool.
// Command-line flags take precedence over these values.
type Config struct {
	DBPath         string  `env:"CUBEMOVES_DB"`
	ScrambleLength int     `env:"CUBEMOVES_SCRAMBLE_LENGTH" envDefault:"20"`
	Seed           *uint64 `env:"CUBEMOVES_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ScrambleLength < 0 {
		return Config{}, fmt.Errorf("parse env: CUBEMOVES_SCRAMBLE_LENGTH must not be negative, got %d", cfg.ScrambleLength)
	}
	return cfg, nil
}
