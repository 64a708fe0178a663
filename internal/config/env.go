// Package config loads CLI settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that may come from the environment. Flags override them.
type Env struct {
	LogLevel   string `env:"ENUM_MAPPER_LOG_LEVEL" envDefault:"info"`
	LogConsole bool   `env:"ENUM_MAPPER_LOG_CONSOLE" envDefault:"true"`
	ConfigPath string `env:"ENUM_MAPPER_CONFIG" envDefault:"enum-mapper.yaml"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
