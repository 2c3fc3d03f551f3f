// Package config assembles runtime settings for the Sparkle client.
//
// Sources are layered, later ones winning: built-in defaults, environment
// variables (optionally loaded from a .env file), a JSON config file
// (-c/-config), and finally command-line flags.
package config

import "time"

// Config holds runtime settings for the Sparkle client.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the backend HTTP API.
//   - RequestTimeout: fixed timeout applied to every backend request.
//   - FeedPageSize: page size for discovery feed requests.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	FeedPageSize   int
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.FeedPageSize = 10
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
