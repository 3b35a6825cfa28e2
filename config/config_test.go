package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BACKEND_URL", "https://api.example.com/")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "edge")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("ALLOWED_ORIGINS", "https://cookstemma.com, http://localhost:3000")
	t.Setenv("DEFAULT_LOCALE", "ko")
	t.Setenv("TOGGLE_RATE_WINDOW", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "https://api.example.com", cfg.BackendURL)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "edge", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, []string{"https://cookstemma.com", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "ko", cfg.DefaultLocale)
	assert.Equal(t, 30*time.Second, cfg.ToggleRateWindow)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("CI", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, 120, cfg.ToggleRateLimit)
	assert.Equal(t, time.Minute, cfg.ToggleRateWindow)
}

func TestLoadConfigProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigProductionReadsSecretFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-file\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("pg-pass"), 0o600))

	t.Setenv("ENV", "production")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "pg-pass", cfg.DBPassword)
}

func TestValidateConfigAggregatesErrors(t *testing.T) {
	cfg := &Config{
		ServerPort:    "",
		BackendURL:    "not a url",
		DefaultLocale: "xx",
		JWTSecret:     "s",
	}

	err := ValidateConfig(cfg, Development)
	require.Error(t, err)
	for _, field := range []string{"SERVER_PORT", "BACKEND_URL", "ALLOWED_ORIGINS", "DEFAULT_LOCALE", "TOGGLE_RATE_LIMIT", "TOGGLE_RATE_WINDOW"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestLoadConfigRejectsEmptyAllowedOrigins(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("CI", "")
	t.Setenv("ALLOWED_ORIGINS", " , ")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALLOWED_ORIGINS: is required")
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBHost: "h", DBPort: "1", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable", cfg.PostgresDSN())
}
