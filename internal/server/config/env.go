package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration from WEBMANAGER_* environment
// variables. Env values take precedence over the JSON file but can
// still be overridden by command-line flags.
//
// Supported variables:
//
//	WEBMANAGER_ADDRESS       HTTP bind address (e.g., ":3000")
//	WEBMANAGER_DATABASE_DSN  PostgreSQL DSN
//	WEBMANAGER_SECRET_KEY    JWT HMAC secret
//	WEBMANAGER_TOKEN_TTL     token lifetime, Go duration string ("1h")
func parseEnv(config *Config) {
	if v := os.Getenv("WEBMANAGER_ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("WEBMANAGER_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("WEBMANAGER_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("WEBMANAGER_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
