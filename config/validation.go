package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cookstemma/edge/internal/locale"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration for the given environment and reports every
// problem at once
func ValidateConfig(cfg *Config, env Environment) error {
	var errs []string
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg}.Error())
	}

	if cfg.ServerPort == "" {
		add("SERVER_PORT", "is required")
	}
	if u, err := url.Parse(cfg.BackendURL); err != nil || u.Scheme == "" || u.Host == "" {
		add("BACKEND_URL", "must be an absolute URL")
	}
	if cfg.WebOriginURL != "" {
		if u, err := url.Parse(cfg.WebOriginURL); err != nil || u.Scheme == "" || u.Host == "" {
			add("WEB_ORIGIN_URL", "must be an absolute URL")
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		add("ALLOWED_ORIGINS", "is required")
	}
	if !locale.IsSupported(cfg.DefaultLocale) {
		add("DEFAULT_LOCALE", fmt.Sprintf("unsupported locale %q", cfg.DefaultLocale))
	}
	if cfg.ToggleRateLimit <= 0 {
		add("TOGGLE_RATE_LIMIT", "must be positive")
	}
	if cfg.ToggleRateWindow <= 0 {
		add("TOGGLE_RATE_WINDOW", "must be a positive duration")
	}
	if cfg.JWTSecret == "" {
		add("JWT_SECRET", "is required")
	}

	// Sensitive values must not keep their development defaults outside development
	if env == Production {
		if cfg.JWTSecret == defaultJWTSecret {
			add("JWT_SECRET", "must be overridden in production")
		}
		if cfg.DBPassword == "" {
			add("DB_PASSWORD", "db_password secret is required")
		}
		if cfg.S3BucketName == "" {
			add("S3_BUCKET_NAME", "is required")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
