package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays cfg with MICROBANK_-prefixed environment variables.
// Set variables replace values from earlier layers (the tags carry the
// overwrite option, since cfg arrives pre-populated); unset variables leave
// the current values alone.
func parseEnv(cfg *Config) {
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper("MICROBANK_", envconfig.OsLookuper()),
	})
	if err != nil {
		panic(err)
	}
}
