package config

import "time"

// Config holds runtime settings for the gophtasks CLI.
type Config struct {
	// ServerURL is the base URL of the task API, e.g. "http://localhost:8080".
	ServerURL string `env:"GOPHTASKS_SERVER_URL"`

	// RequestTimeout bounds a single API call.
	RequestTimeout time.Duration `env:"GOPHTASKS_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file, the environment and the
// command line, each overriding the previous one.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
