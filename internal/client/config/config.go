package config

import "time"

// Config holds runtime settings for the community CLI.
//
// Fields:
//   - BaseURL: root of the backing REST store, no trailing slash.
//   - RequestTimeout: per-request deadline for gateway calls. Zero means
//     wait forever.
//   - DatabasePath: SQLite file holding the durable local storage.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://192.168.56.1:3000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "community.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
