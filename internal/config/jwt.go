// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret             string
	AccessExpiryMins   int
	RefreshExpiryHours int
}

// NewJWTConfig creates a new JWT configuration from environment
// variables. It reads JWT_SECRET (required), JWT_ACCESS_EXPIRY_MINUTES
// (default: 30) and JWT_REFRESH_EXPIRY_HOURS (default: 168, one week).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	accessMins, err := envInt("JWT_ACCESS_EXPIRY_MINUTES", 30)
	if err != nil {
		return nil, err
	}

	refreshHours, err := envInt("JWT_REFRESH_EXPIRY_HOURS", 168)
	if err != nil {
		return nil, err
	}

	config := &JWTConfig{
		Secret:             secret,
		AccessExpiryMins:   accessMins,
		RefreshExpiryHours: refreshHours,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.AccessExpiryMins < 1 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY_MINUTES must be at least 1, got: %d", c.AccessExpiryMins)
	}
	if c.RefreshExpiryHours < 1 {
		return fmt.Errorf("JWT_REFRESH_EXPIRY_HOURS must be at least 1, got: %d", c.RefreshExpiryHours)
	}
	return nil
}
