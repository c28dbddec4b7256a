// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// Config holds settings shared by every command. Flags override these
// values when set explicitly.
type Config struct {
	LogLevel   string `env:"MINICV_LOG_LEVEL" envDefault:"info"`
	DevMode    bool   `env:"MINICV_DEV_MODE" envDefault:"false"`
	Workers    int    `env:"MINICV_WORKERS" envDefault:"0"`
	Profile    string `env:"MINICV_PROFILE" envDefault:"marsbot"`
	AutoOrient bool   `env:"MINICV_AUTO_ORIENT" envDefault:"false"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("MINICV_WORKERS must be >= 0, got %d", cfg.Workers)
	}
	return cfg, nil
}

// WorkerCount resolves Workers, where 0 means one per CPU.
func (c Config) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Logger builds a zap logger. Unparseable levels fall back to info.
func (c Config) Logger() (*zap.Logger, error) {
	var cfg zap.Config
	if c.DevMode {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if err := cfg.Level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
