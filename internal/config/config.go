// Package config loads and validates application configuration from
// environment variables, after merging an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. When empty the server
	// keeps presence sessions in memory.
	DatabaseURL string

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	CORSOrigins []string

	// BaseURL is the public origin used for absolute sitemap URLs.
	BaseURL string

	// PresenceTTL is how long a session stays active after a heartbeat.
	PresenceTTL time.Duration

	// SweepSchedule is the cron spec for deleting stale sessions.
	SweepSchedule string
}

// Load merges .env (if present) into the environment, then reads the
// configuration. Variables already set in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load: .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		BaseURL:       strings.TrimRight(getEnv("BASE_URL", "https://timezones.live"), "/"),
		SweepSchedule: getEnv("SWEEP_SCHEDULE", "@every 2m"),
	}

	ttl, err := time.ParseDuration(getEnv("PRESENCE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("config: PRESENCE_TTL: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("config: PRESENCE_TTL must be positive, got %s", ttl)
	}
	cfg.PresenceTTL = ttl

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
