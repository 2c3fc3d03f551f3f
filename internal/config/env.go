package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	envBaseURL  = "SPARKLE_API_URL"
	envTimeout  = "SPARKLE_REQUEST_TIMEOUT"
	envPageSize = "SPARKLE_FEED_PAGE_SIZE"
	envLogLevel = "SPARKLE_LOG_LEVEL"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win over the file (godotenv semantics).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FeedPageSize = n
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
