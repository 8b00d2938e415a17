package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
)

// parseFlags overlays cfg with -a, -t, -r and -l from args. Other flags are
// ignored so the binary can own its own.
func parseFlags(cfg *Config, args []string) error {
	fs := flagx.NewFlagSet("console")

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the user authority")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	delay := fs.Int("r", int(cfg.RedirectDelay.Milliseconds()), "redirect delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-t", "-r", "-l"})); err != nil {
		return err
	}

	// Durations are only overwritten when given, so sub-unit values from
	// the file or the environment survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "r":
			cfg.RedirectDelay = time.Duration(*delay) * time.Millisecond
		}
	})
	return nil
}
