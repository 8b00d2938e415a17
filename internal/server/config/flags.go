package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
)

// parseFlags populates selected Config fields from args.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   session token secret key
//	-t int      session lifetime, minutes
//	-n string   session cookie name
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	fs := flagx.NewFlagSet("server")

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	ttl := fs.Int("t", int(cfg.SessionTTL.Minutes()), "session lifetime (in minutes)")
	fs.StringVar(&cfg.CookieName, "n", cfg.CookieName, "session cookie name")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-n", "-l"})); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionTTL = time.Duration(*ttl) * time.Minute
		}
	})
	return nil
}
