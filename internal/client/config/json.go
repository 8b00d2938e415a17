package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
	"github.com/dmitrijs2005/userconsole/internal/timex"
)

// JSONConfig is the on-disk form of Config. Absent keys leave the current
// value untouched.
type JSONConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	RedirectDelay  *timex.Duration `json:"redirect_delay"`
	LogLevel       *string         `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c/-config in args, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RedirectDelay != nil {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
