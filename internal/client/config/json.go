package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/microbank-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is given in whole seconds to keep config files plain.
type JsonConfig struct {
	ServerBaseURL         string `json:"server_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	DatabaseDSN           string `json:"database_dsn"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// When no file is given, nothing happens. Read or unmarshal failures panic;
// a broken config file should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
