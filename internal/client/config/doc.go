// Package config loads runtime configuration for the console client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (CONSOLE_SERVER_URL, CONSOLE_REQUEST_TIMEOUT,
//     CONSOLE_REDIRECT_DELAY, CONSOLE_LOG_LEVEL).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the user authority
//	-t int      request timeout (seconds)
//	-r int      redirect delay after a success notice (milliseconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "redirect_delay": "1500ms",
//	  "log_level": "debug"
//	}
package config
