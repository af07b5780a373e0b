package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/investportal/internal/flagx"
	"github.com/dmitrijs2005/investportal/internal/timex"
)

// JsonConfig is the on-disk shape. Pointer fields distinguish "absent"
// from zero so a partial file only overrides what it names.
type JsonConfig struct {
	DatabasePath          *string         `json:"database_path"`
	FallbackAdminEmail    *string         `json:"fallback_admin_email"`
	FallbackAdminPassword *string         `json:"fallback_admin_password"`
	SavedLoginsLimit      *int            `json:"saved_logins_limit"`
	SimulatedLatency      *timex.Duration `json:"simulated_latency"`
	DefaultCountry        *string         `json:"default_country"`
	LogLevel              *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file given by -c or -config.
// Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.FallbackAdminEmail != nil {
		cfg.FallbackAdminEmail = *jc.FallbackAdminEmail
	}
	if jc.FallbackAdminPassword != nil {
		cfg.FallbackAdminPassword = *jc.FallbackAdminPassword
	}
	if jc.SavedLoginsLimit != nil {
		cfg.SavedLoginsLimit = *jc.SavedLoginsLimit
	}
	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
	if jc.DefaultCountry != nil {
		cfg.DefaultCountry = *jc.DefaultCountry
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
