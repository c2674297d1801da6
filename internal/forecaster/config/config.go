package config

import (
	"time"

	"golang-stock-forecast/pkg/common"
	"golang-stock-forecast/pkg/config"
)

// PredictionAPI holds the configuration for the prediction backend.
type PredictionAPI struct {
	BaseURL             string        `mapstructure:"base_url" validate:"required,url"`
	Timeout             time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute" validate:"gte=0"`
	StockInfoCacheTTL   time.Duration `mapstructure:"stock_info_cache_ttl" validate:"gte=0"`
}

// UI holds presentation settings.
type UI struct {
	ErrorDismissAfter time.Duration `mapstructure:"error_dismiss_after" validate:"gt=0"`
	DefaultDays       int           `mapstructure:"default_days" validate:"gt=0,lte=90"`
	ChartWidth        int           `mapstructure:"chart_width" validate:"gte=20"`
	ChartHeight       int           `mapstructure:"chart_height" validate:"gte=5"`
	HTMLOutput        string        `mapstructure:"html_output"`
}

// Config holds the full configuration for the forecast client.
type Config struct {
	App           config.App    `mapstructure:"app"`
	Logger        config.Logger `mapstructure:"logger"`
	PredictionAPI PredictionAPI `mapstructure:"prediction_api"`
	UI            UI            `mapstructure:"ui"`
}

// Default returns the configuration used for values missing from the file.
func Default() Config {
	return Config{
		App:    config.App{Name: "forecast-client"},
		Logger: config.Logger{Level: "info", Encoding: "json"},
		PredictionAPI: PredictionAPI{
			BaseURL:           "http://localhost:8000",
			Timeout:           30 * time.Second,
			StockInfoCacheTTL: common.StockInfoCacheTTL,
		},
		UI: UI{
			ErrorDismissAfter: common.ErrorDismissAfter,
			DefaultDays:       common.DefaultHorizonDays,
			ChartWidth:        80,
			ChartHeight:       16,
		},
	}
}

// Load loads the client configuration from the given path on top of Default.
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
