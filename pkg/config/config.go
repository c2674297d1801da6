package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name" validate:"required"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level       string   `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Encoding    string   `mapstructure:"encoding" validate:"omitempty,oneof=json console"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"gte=0,lte=65535"`
}

var validate = validator.New()

// Load loads configuration from a file into the given config struct.
// Environment variables override file values, with "." in keys replaced by "_"
// (e.g. PREDICTION_API_BASE_URL).
func Load(path string, config interface{}) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Failed to read config file .env config try read from environment variables")
	}

	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// Validate checks the `validate` struct tags of a loaded config.
func Validate(config interface{}) error {
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
