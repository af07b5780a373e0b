package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the portal CLI.
type Config struct {
	// DatabasePath is the SQLite file backing the local key-value store.
	DatabasePath string

	// FallbackAdminEmail and FallbackAdminPassword form the built-in
	// super-admin pair that always authenticates. An empty email disables it.
	FallbackAdminEmail    string
	FallbackAdminPassword string

	// SavedLoginsLimit bounds the recents list.
	SavedLoginsLimit int

	// SimulatedLatency is how long the login and forgot-password screens
	// pretend to wait for a backend.
	SimulatedLatency time.Duration

	// DefaultCountry is recorded on saved logins.
	DefaultCountry string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "data/portal.db"
	c.FallbackAdminEmail = "admin@investportal.local"
	c.FallbackAdminPassword = "admin123"
	c.SavedLoginsLimit = 5
	c.SimulatedLatency = time.Second
	c.DefaultCountry = "US"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then command-line flags. Later sources win.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
