package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/", c.ServerBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "microbank.db", c.DatabaseDSN)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8080/", cfg.ServerBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "microbank.db", cfg.DatabaseDSN)
}

func TestLoadConfig_LaterSourcesWin(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// env beats defaults, flags beat env.
	t.Setenv("MICROBANK_SERVER_BASE_URL", "http://env.example:7000/")
	t.Setenv("MICROBANK_DATABASE_DSN", "env.db")
	os.Args = []string{"testbin", "-d", "flag.db"}

	cfg := LoadConfig()

	assert.Equal(t, "http://env.example:7000/", cfg.ServerBaseURL)
	assert.Equal(t, "flag.db", cfg.DatabaseDSN)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
