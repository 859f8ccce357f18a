package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, populated from environment
// variables. DBPath empty means the in-memory store is used.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	DBPath   string `env:"DB_PATH"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Conditions ConditionDefaults
}

// ConditionDefaults are the bootstrap values for the six named thresholds.
// The registry is seeded with them on startup; they stay tunable at runtime
// through the condition endpoints.
type ConditionDefaults struct {
	K int `env:"CONDITION_K" envDefault:"10"`
	M int `env:"CONDITION_M" envDefault:"3"`
	S int `env:"CONDITION_S" envDefault:"10"`
	N int `env:"CONDITION_N" envDefault:"5"`
	T int `env:"CONDITION_T" envDefault:"3"`
	L int `env:"CONDITION_L" envDefault:"10"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
