package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the edge server and CLI
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Upstream services
	BackendURL   string
	WebOriginURL string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Image storage
	S3BucketName string
	AWSRegion    string

	// Web
	AllowedOrigins []string
	DefaultLocale  string

	// Social toggle gateway
	ToggleRateLimit  int
	ToggleRateWindow time.Duration
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN builds a key/value DSN understood by both lib/pq and pgx
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("BACKEND_URL", "http://localhost:4000")
	v.SetDefault("WEB_ORIGIN_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "cookstemma_edge")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("S3_BUCKET_NAME", "cookstemma-images")
	v.SetDefault("AWS_REGION", "ap-northeast-2")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DEFAULT_LOCALE", "en")
	v.SetDefault("TOGGLE_RATE_LIMIT", 120)
	v.SetDefault("TOGGLE_RATE_WINDOW", "1m")
}

const defaultJWTSecret = "dev-secret-change-me"

// LoadConfig creates a new Config instance from environment variables, falling back to
// Docker secrets in production
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := fromViper(v)

	switch env {
	case Production:
		loadProdSecrets(cfg)
	case CI, Development, Test:
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg, env); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServerHost:       v.GetString("SERVER_HOST"),
		ServerPort:       v.GetString("SERVER_PORT"),
		BackendURL:       strings.TrimRight(v.GetString("BACKEND_URL"), "/"),
		WebOriginURL:     strings.TrimRight(v.GetString("WEB_ORIGIN_URL"), "/"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBSSLMode:        v.GetString("DB_SSL_MODE"),
		RedisHost:        v.GetString("REDIS_HOST"),
		RedisPort:        v.GetString("REDIS_PORT"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		RedisURL:         v.GetString("REDIS_URL"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		S3BucketName:     v.GetString("S3_BUCKET_NAME"),
		AWSRegion:        v.GetString("AWS_REGION"),
		AllowedOrigins:   splitList(v.GetString("ALLOWED_ORIGINS")),
		DefaultLocale:    v.GetString("DEFAULT_LOCALE"),
		ToggleRateLimit:  v.GetInt("TOGGLE_RATE_LIMIT"),
		ToggleRateWindow: v.GetDuration("TOGGLE_RATE_WINDOW"),
	}
}

// loadProdSecrets overrides sensitive values with Docker secrets when present
func loadProdSecrets(cfg *Config) {
	if s := readSecret("db_password"); s != "" {
		cfg.DBPassword = s
	}
	if s := readSecret("jwt_secret"); s != "" {
		cfg.JWTSecret = s
	}
	if s := readSecret("redis_password"); s != "" {
		cfg.RedisPassword = s
	}
	if s := readSecret("redis_url"); s != "" {
		cfg.RedisURL = s
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
