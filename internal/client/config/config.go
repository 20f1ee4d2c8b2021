// Package config loads runtime settings for the MicroBank CLI. Sources are
// layered: defaults, then a JSON file, then environment variables, then
// command-line flags; later sources take precedence.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - RequestTimeout: fixed per-request transport timeout.
//   - DatabaseDSN: path/DSN of the local sqlite database holding the session.
type Config struct {
	ServerBaseURL  string        `env:"SERVER_BASE_URL, overwrite"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, overwrite"`
	DatabaseDSN    string        `env:"DATABASE_DSN, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "microbank.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a -c/-config file is given), the MICROBANK_* environment,
// and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
