// Package config provides environment-driven configuration for the
// server and its external collaborators.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/hireflow/internal/mail"
)

// Config holds process-wide configuration read from the environment.
type Config struct {
	DatabaseURL  string
	GeminiAPIKey string
	SMTP         mail.SMTPConfig
}

// Load reads configuration from environment variables. DATABASE_URL and
// GEMINI_API_KEY are required; SMTP settings have local defaults so the
// server can start against a development relay.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	smtpPort, err := envInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:  databaseURL,
		GeminiAPIKey: apiKey,
		SMTP: mail.SMTPConfig{
			Host:     envDefault("SMTP_HOST", "localhost"),
			Port:     smtpPort,
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     envDefault("SMTP_FROM", os.Getenv("SMTP_USER")),
		},
	}

	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}
