// Package config provides configuration loading and validation for the
// analyzer CLI and HTTP server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// App holds process-level configuration read from the environment.
// DatabaseURL is optional for pure CLI analysis runs and required by the server.
type App struct {
	DatabaseURL string
	Port        int
	LogLevel    string
	LogFormat   string // "json" or "pretty"
}

// FromEnv builds an App config from environment variables.
// PORT defaults to 8080, LOG_LEVEL to info and LOG_FORMAT to json.
func FromEnv() (*App, error) {
	cfg := &App{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        8080,
		LogLevel:    "info",
		LogFormat:   "json",
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *App) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.LogFormat != "json" && c.LogFormat != "pretty" {
		return fmt.Errorf("LOG_FORMAT must be json or pretty, got: %s", c.LogFormat)
	}
	return nil
}

// RequireDatabase returns an error if no database URL is configured.
func (c *App) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	return nil
}
