// Package config provides environment-driven defaults for the CLI flags.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds the GORCC_* environment defaults.
type Config struct {
	LogLevel string `env:"GORCC_LOG_LEVEL" envDefault:"info"`

	// Default material and cover values seeded into the CLI flags.
	Fc    float64 `env:"GORCC_DEFAULT_FC" envDefault:"21"`
	Fy    float64 `env:"GORCC_DEFAULT_FY" envDefault:"420"`
	Cover float64 `env:"GORCC_DEFAULT_COVER" envDefault:"40"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad loads the configuration, falling back to the built-in defaults
// with a warning when an environment value cannot be parsed.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring invalid GORCC_* environment: %v\n", err)
		return &Config{LogLevel: "info", Fc: 21, Fy: 420, Cover: 40}
	}
	return cfg
}
