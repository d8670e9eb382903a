// Package config loads runtime settings for the studhub CLI.
package config

import "time"

// Config holds runtime settings for the studhub CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST service.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - Debug: switches the logger to its development config.
type Config struct {
	ServerBaseURL       string
	OnlineCheckInterval time.Duration
	Debug               bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.OnlineCheckInterval = 3 * time.Second
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
