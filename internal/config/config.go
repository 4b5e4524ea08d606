package config

import (
	"os"
	"time"
)

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	JWTExpiration time.Duration
	Port          string
	SentryDSN     string
	Domain        string
}

func Load() *Config {
	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/budget"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: 168 * time.Hour,
		Port:          getEnv("PORT", "3000"),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		Domain:        os.Getenv("DOMAIN"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
