package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for environment parsing. Pointer fields distinguish
// "unset" from "set to the zero value" so env never clobbers defaults.
type envConfig struct {
	BaseURL        *string        `env:"COMMUNITY_API_URL"`
	RequestTimeout *time.Duration `env:"COMMUNITY_REQUEST_TIMEOUT"`
	DatabasePath   *string        `env:"COMMUNITY_DB_PATH"`
}

// parseEnv overlays Config with values from the process environment.
// Malformed values panic (caller may recover); a clean environment is a
// no-op.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.BaseURL != nil {
		cfg.BaseURL = *ec.BaseURL
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
}
