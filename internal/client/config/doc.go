// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
// Every key is optional. Durations accept "750ms" or integer nanoseconds:
//
//	{
//	  "database_path": "data/portal.db",
//	  "fallback_admin_email": "admin@investportal.local",
//	  "fallback_admin_password": "admin123",
//	  "saved_logins_limit": 5,
//	  "simulated_latency": "1s",
//	  "default_country": "US",
//	  "log_level": "info"
//	}
//
// The fallback admin pair can only be set from JSON so that the password
// never shows up in a process listing.
package config
