// internal/config/config.go
//
// Environment configuration shared by both commands.
//
// Load reads an optional .env file from the working directory, then parses the
// process environment into Config. Variables already set in the environment
// win over .env entries.
//
//   LOG_LEVEL=debug|info|warn|error   (default warn)
//   LOG_FORMAT=console|json           (default console)
//   RPS_SEED=<uint64>                 (default 0, entropy-seeded)

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the ambient settings of a run.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	// Seed makes draws reproducible when non-zero.
	Seed uint64 `env:"RPS_SEED" envDefault:"0"`
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return Config{}, fmt.Errorf("LOG_FORMAT %q: want %s or %s", cfg.LogFormat, FormatConsole, FormatJSON)
	}
	return cfg, nil
}
