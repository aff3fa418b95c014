package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultJWTExpirationHours applies when JWT_EXPIRATION_HOURS is unset.
const DefaultJWTExpirationHours = 24

// JWTConfig holds the signing secret and token lifetime for the API's
// bearer tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS from the
// environment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := DefaultJWTExpirationHours
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		var err error
		hours, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", hours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}
