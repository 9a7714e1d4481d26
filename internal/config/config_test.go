package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "file", cfg.DBType)
	assert.Equal(t, "data/events.json", cfg.EventsFile)
	assert.Equal(t, 7, cfg.ChartWindowDays)
	assert.False(t, cfg.ChartFillEmpty)
	assert.Equal(t, time.Duration(0), cfg.TimeOffset)
	assert.Equal(t, int64(1), cfg.LocalTokens["MOCK-TOKEN"])
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "events.db")
	t.Setenv("TIME_OFFSET", "3h")
	t.Setenv("CHART_FILL_EMPTY_DAYS", "true")
	t.Setenv("LOCAL_TOKENS", "alpha:42,beta:7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, 3*time.Hour, cfg.TimeOffset)
	assert.True(t, cfg.ChartFillEmpty)
	assert.Equal(t, int64(42), cfg.LocalTokens["alpha"])
	assert.Equal(t, int64(7), cfg.LocalTokens["beta"])
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"postgres needs dsn", func(c *Config) { c.DBType = "postgres" }, true},
		{"unknown backend", func(c *Config) { c.DBType = "etcd" }, true},
		{"bad env", func(c *Config) { c.Env = "qa" }, true},
		{"production needs auth url", func(c *Config) { c.Env = "production" }, true},
		{"zero window", func(c *Config) { c.ChartWindowDays = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Env:             "development",
				DBType:          "file",
				EventsFile:      "data/events.json",
				ChartWindowDays: 7,
			}
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
