// Package config handles configuration for the user authority, including
// defaults, JSON overlay, environment variables and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the user authority.
//
// Fields:
//   - Addr: HTTP bind address.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps users in memory.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use test defaults in prod.
//   - SessionTTL: lifetime of a login session.
//   - CookieName: name of the session cookie.
type Config struct {
	Addr        string        `env:"UC_ADDR"`
	DatabaseDSN string        `env:"UC_DATABASE_DSN"`
	SecretKey   string        `env:"UC_SECRET_KEY"`
	SessionTTL  time.Duration `env:"UC_SESSION_TTL"`
	CookieName  string        `env:"UC_COOKIE_NAME"`
	LogLevel    string        `env:"UC_LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.SessionTTL = 12 * time.Hour
	c.CookieName = "session"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file, the environment and the
// flags in args. Later sources win.
func LoadConfig(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
