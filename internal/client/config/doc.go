// Package config loads runtime configuration for the gophtasks CLI.
//
// Sources and precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment: GOPHTASKS_SERVER_URL, GOPHTASKS_REQUEST_TIMEOUT ("5s").
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the task API
//	-r int      request timeout (seconds)
//
// # JSON schema
//
// The file may contain comments. The timeout is a timex.Duration, so it can
// be a string like "5s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "request_timeout": "10s"
//	}
package config
