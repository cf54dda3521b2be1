package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config holds environment defaults; command flags override them.
type config struct {
	Format   string `env:"SHAPES_FORMAT" envDefault:"table"`
	LogLevel string `env:"SHAPES_LOG_LEVEL" envDefault:"off"`
	Trace    bool   `env:"SHAPES_TRACE"`
	Metrics  bool   `env:"SHAPES_METRICS"`
}

func loadConfig() (*config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
