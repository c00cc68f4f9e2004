package config

import (
	"fmt"
	"net/textproto"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}
	if c.Database.LockTimeout <= 0 {
		return fmt.Errorf("database.lock_timeout must be > 0 (got %v)", c.Database.LockTimeout)
	}

	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.IdentityHeader) == "" {
		return fmt.Errorf("auth.identity_header must not be empty")
	}
	c.Auth.IdentityHeader = textproto.CanonicalMIMEHeaderKey(strings.TrimSpace(c.Auth.IdentityHeader))

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
		}
	}

	if err := c.Resources.validate(); err != nil {
		return fmt.Errorf("resources: %w", err)
	}

	if c.Audit.RetentionDays <= 0 {
		return fmt.Errorf("audit.retention_days must be > 0 (got %d)", c.Audit.RetentionDays)
	}

	return nil
}

func (r *ResourcesConfig) validate() error {
	if r.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", r.DefaultPageSize)
	}
	if r.MaxPageSize < r.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", r.MaxPageSize, r.DefaultPageSize)
	}
	if r.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0 (got %d)", r.HistoryLimit)
	}
	return nil
}
