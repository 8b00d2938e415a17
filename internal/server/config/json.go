package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
	"github.com/dmitrijs2005/userconsole/internal/timex"
)

// JSONConfig is the on-disk form of Config. Durations accept "12h" strings
// or integer nanoseconds. Absent keys keep the current value.
type JSONConfig struct {
	Addr        *string         `json:"addr"`
	DatabaseDSN *string         `json:"database_dsn"`
	SecretKey   *string         `json:"secret_key"`
	SessionTTL  *timex.Duration `json:"session_ttl"`
	CookieName  *string         `json:"cookie_name"`
	LogLevel    *string         `json:"log_level"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var c JSONConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}

	setString(&cfg.Addr, c.Addr)
	setString(&cfg.DatabaseDSN, c.DatabaseDSN)
	setString(&cfg.SecretKey, c.SecretKey)
	setString(&cfg.CookieName, c.CookieName)
	setString(&cfg.LogLevel, c.LogLevel)
	if c.SessionTTL != nil {
		cfg.SessionTTL = c.SessionTTL.Duration
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
