// Package config loads zweather settings from the environment: a .env file
// is read first (non-fatal when absent), envconfig populates the struct,
// and validator enforces the constraints.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all client settings. Location and Units are environment
// fallbacks; the corresponding flags override them.
type Config struct {
	APIKey    string        `envconfig:"TOMORROW_API_KEY" validate:"required"`
	BaseURL   string        `envconfig:"TOMORROW_BASE_URL" default:"https://api.tomorrow.io/v4" validate:"url"`
	Timeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	Location  string        `envconfig:"LOCATION"`
	Units     string        `envconfig:"UNITS"`
}

// Load reads configuration from a .env file (if present) and the
// environment, applies defaults, and validates the result.
func Load() (*Config, error) {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
