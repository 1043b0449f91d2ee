package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/greenvalley/community/internal/flagx"
	"github.com/greenvalley/community/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so files can specify the timeout either as a string
// like "15s" or as integer nanoseconds.
type jsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
}

// parseJSON overlays Config with values loaded from the file named by the
// -c/-config flags. If no file is named, nothing happens. Read or
// unmarshal errors panic (caller may recover). Only fields present in the
// file override the current value.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
