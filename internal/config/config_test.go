package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JamesDimonaco/timezone-map/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DATABASE_URL", "LOG_LEVEL", "CORS_ORIGINS", "BASE_URL", "PRESENCE_TTL", "SWEEP_SCHEDULE"} {
		t.Setenv(k, "")
	}
}

// TestFromEnv_defaults verifies that every variable is optional.
func TestFromEnv_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.FromEnv()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	require.Equal(t, "https://timezones.live", cfg.BaseURL)
	require.Equal(t, 60*time.Second, cfg.PresenceTTL)
	require.Equal(t, "@every 2m", cfg.SweepSchedule)
}

func TestFromEnv_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/tz")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://timezones.live, https://www.timezones.live")
	t.Setenv("BASE_URL", "https://example.com/")
	t.Setenv("PRESENCE_TTL", "90s")
	t.Setenv("SWEEP_SCHEDULE", "*/5 * * * *")

	cfg, err := config.FromEnv()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "postgres://user:pass@db:5432/tz", cfg.DatabaseURL)
	require.Equal(t, []string{"https://timezones.live", "https://www.timezones.live"}, cfg.CORSOrigins)
	require.Equal(t, "https://example.com", cfg.BaseURL, "trailing slash is trimmed")
	require.Equal(t, 90*time.Second, cfg.PresenceTTL)
	require.Equal(t, "*/5 * * * *", cfg.SweepSchedule)
}

func TestFromEnv_invalidTTL(t *testing.T) {
	for _, v := range []string{"soon", "-5s", "0s"} {
		clearEnv(t)
		t.Setenv("PRESENCE_TTL", v)

		_, err := config.FromEnv()

		require.Error(t, err, "PRESENCE_TTL=%q", v)
		require.ErrorContains(t, err, "PRESENCE_TTL")
	}
}

// TestLoad_dotenv verifies that .env fills unset variables but never
// overrides the real environment.
func TestLoad_dotenv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\nLOG_LEVEL=warn\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "error")
	// godotenv only fills variables that are absent, not empty ones.
	require.NoError(t, os.Unsetenv("PORT"))

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Port)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_noDotenv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	_, err := config.Load()

	require.NoError(t, err)
}
