package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration from environment variables. The secret in
// particular is expected to arrive this way in deployments, so that it never
// appears on a command line or in a checked-in file.
//
//	RUN_ADDR       HTTP bind address
//	DATABASE_DSN   PostgreSQL DSN
//	JWT_SECRET     HMAC secret for signing tokens
//	TOKEN_TTL      access token validity, e.g. "24h"
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("RUN_ADDR"); ok {
		config.RunAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.JWTSecret = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenTTL = d
		}
	}
}
