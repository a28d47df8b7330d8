package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays GOPHTASKS_* environment variables onto config.
// Unset variables leave the current value untouched. Malformed values panic,
// the same way a broken JSON file or flag does.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
