package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort      = "8080"
	defaultJWTTTL    = "24h"
	defaultDatabase  = "warrantly.db"
	defaultStrictRef = "false"
)

// Config is the process configuration, read from the environment (cmd/api
// loads .env via godotenv first).
type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration

	// StrictRefs makes list projections surface dangling brand references
	// as errors instead of silently dropping the affected products.
	StrictRefs bool
}

func Load() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttl, err := time.ParseDuration(getenv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	strict, err := strconv.ParseBool(getenv("STRICT_REFS", defaultStrictRef))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_REFS: %w", err)
	}

	return &Config{
		DatabaseURL: getenv("DATABASE_URL", defaultDatabase),
		Port:        getenv("PORT", defaultPort),
		JWTSecret:   jwtSecret,
		JWTTTL:      ttl,
		StrictRefs:  strict,
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
