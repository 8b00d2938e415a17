package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the console client.
type Config struct {
	// ServerBaseURL is the user authority, e.g. http://localhost:8080.
	ServerBaseURL string `env:"CONSOLE_SERVER_URL"`
	// RequestTimeout bounds every remote call.
	RequestTimeout time.Duration `env:"CONSOLE_REQUEST_TIMEOUT"`
	// RedirectDelay is how long a success notice stays before the view moves on.
	RedirectDelay time.Duration `env:"CONSOLE_REDIRECT_DELAY"`
	LogLevel      string        `env:"CONSOLE_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.RedirectDelay = 1500 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file, the environment and the
// command-line flags in args. Later sources win.
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
