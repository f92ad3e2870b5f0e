// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting of the duel.
type Config struct {
	PlayerOne string `env:"SPELLDUEL_PLAYER_ONE" envDefault:"Player 1"`
	PlayerTwo string `env:"SPELLDUEL_PLAYER_TWO" envDefault:"Player 2"`

	// Script, when set, replays a decision file headlessly.
	Script string `env:"SPELLDUEL_SCRIPT"`

	Telemetry bool `env:"SPELLDUEL_TELEMETRY" envDefault:"true"`

	Logging LoggingConfig `envPrefix:"SPELLDUEL_LOG_"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"console"`
	File   string `env:"FILE" envDefault:"spellduel.log"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.PlayerOne) == "" {
		errs = append(errs, errors.New("player one name is empty"))
	}
	if strings.TrimSpace(c.PlayerTwo) == "" {
		errs = append(errs, errors.New("player two name is empty"))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
