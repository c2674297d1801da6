package config

import (
	"time"

	"golang-stock-forecast/pkg/config"
)

// Sandbox holds settings of the synthetic prediction model.
type Sandbox struct {
	HistoryCacheTTL time.Duration `mapstructure:"history_cache_ttl" validate:"gte=0"`
	Volatility      float64       `mapstructure:"volatility" validate:"gte=0,lte=0.2"`
	ModelLoaded     bool          `mapstructure:"model_loaded"`
}

// Config holds the full configuration for the sandbox service.
type Config struct {
	App     config.App    `mapstructure:"app"`
	Logger  config.Logger `mapstructure:"logger"`
	API     config.API    `mapstructure:"api"`
	Sandbox Sandbox       `mapstructure:"sandbox"`
}

// Default returns the configuration used for values missing from the file.
func Default() Config {
	return Config{
		App:    config.App{Name: "sandbox-service"},
		Logger: config.Logger{Level: "info", Encoding: "json"},
		API:    config.API{Port: 8000},
		Sandbox: Sandbox{
			HistoryCacheTTL: time.Hour,
			Volatility:      0.015,
			ModelLoaded:     true,
		},
	}
}

// Load loads the sandbox configuration from the given path on top of Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
