// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the client needs to run. The deployment URL and
// anon key identify the remote service; the rest is local plumbing.
type Config struct {
	// APIURL is the base URL of the remote service deployment.
	APIURL string `validate:"required,url"`

	// AnonKey is the public API key sent with every request.
	AnonKey string `validate:"required"`

	// DBPath is where the local session cache lives.
	DBPath string `validate:"required"`

	// MetricsAddr enables the debug metrics listener when non-empty,
	// e.g. "localhost:9090".
	MetricsAddr string
}

// Load reads configuration from a .env file (when present) and the
// environment, then validates it.
//
// Environment variables:
//
//	SPLITMATE_API_URL   (required)
//	SPLITMATE_ANON_KEY  (required)
//	DB_PATH             (default: ./data/splitmate.db)
//	METRICS_ADDR        (optional)
func Load() (*Config, error) {
	// Missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:      os.Getenv("SPLITMATE_API_URL"),
		AnonKey:     os.Getenv("SPLITMATE_ANON_KEY"),
		DBPath:      getEnv("DB_PATH", "./data/splitmate.db"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
