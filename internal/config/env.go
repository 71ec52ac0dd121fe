package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds overrides read from the environment. Empty values are unset.
type EnvConfig struct {
	Script   string `env:"LYRICBOSS_SCRIPT"`
	Title    string `env:"LYRICBOSS_TITLE"`
	LogLevel string `env:"LYRICBOSS_LOG_LEVEL"`
	LogFile  string `env:"LYRICBOSS_LOG_FILE"`
}

// LoadEnv parses LYRICBOSS_* environment variables.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
