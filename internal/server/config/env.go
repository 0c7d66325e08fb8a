package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the process environment. A local
// .env file is loaded first if present; a missing file is not an error.
//
// Recognized variables:
//
//	ADDRESS       HTTP bind address (e.g. ":8080")
//	DATABASE_DSN  PostgreSQL DSN
//	SECRET_KEY    JWT HMAC secret key
//	TOKEN_TTL     access token validity (Go duration, e.g. "15m")
//	BCRYPT_COST   bcrypt work factor
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
