package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/investportal/internal/flagx"
)

// parseFlags populates Config fields from command-line flags:
//
//	-db string       path to the local database
//	-l int           saved logins limit
//	-d int           simulated backend latency (milliseconds)
//	-country string  country recorded on saved logins
//	-log string      log level
//
// Arguments are filtered with flagx.FilterArgs first, so -c/-config and
// anything else are ignored here.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-db", "-l", "-d", "-country", "-log"})

	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the local database")
	fs.IntVar(&cfg.SavedLoginsLimit, "l", cfg.SavedLoginsLimit, "saved logins limit")
	latency := fs.Int("d", int(cfg.SimulatedLatency.Milliseconds()), "simulated backend latency (in milliseconds)")
	fs.StringVar(&cfg.DefaultCountry, "country", cfg.DefaultCountry, "country recorded on saved logins")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.SimulatedLatency = time.Duration(*latency) * time.Millisecond

	if cfg.SavedLoginsLimit < 1 {
		return fmt.Errorf("saved logins limit must be positive, got %d", cfg.SavedLoginsLimit)
	}
	return nil
}
