package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultServerHost, cfg.Server.Host)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, cfg.Logger.Level)
	assert.Equal(t, DefaultDataDir, cfg.Storage.DataDir)
	assert.Equal(t, DefaultOutputDir, cfg.Storage.OutputDir)
	assert.Equal(t, DefaultWatchlistPath, cfg.Storage.WatchlistPath)
	assert.InDelta(t, 0.9, cfg.Matching.CharWeight, 0.0001)
	assert.InDelta(t, 0.75, cfg.Matching.PossibleThreshold, 0.0001)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WATCHLIST_PATH", "/srv/lists/watchlist.json")
	t.Setenv("MATCH_POSSIBLE_THRESHOLD", "0.7")
	t.Setenv("MAX_CONCURRENT_RUNS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "/srv/lists/watchlist.json", cfg.Storage.WatchlistPath)
	assert.InDelta(t, 0.7, cfg.Matching.PossibleThreshold, 0.0001)
	assert.Equal(t, 4, cfg.Screening.MaxConcurrentRuns)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("MATCH_CHAR_WEIGHT", "lots")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.InDelta(t, 0.9, cfg.Matching.CharWeight, 0.0001)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "PORT",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logger.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "bad environment",
			mutate:  func(c *Config) { c.Logger.Environment = "qa" },
			wantErr: "APP_ENV",
		},
		{
			name:    "missing watchlist path",
			mutate:  func(c *Config) { c.Storage.WatchlistPath = "" },
			wantErr: "WATCHLIST_PATH",
		},
		{
			name:    "matching weight out of range",
			mutate:  func(c *Config) { c.Matching.TokenWeight = -0.1 },
			wantErr: "MATCH_*",
		},
		{
			name:    "negative concurrency",
			mutate:  func(c *Config) { c.Screening.MaxConcurrentRuns = -1 },
			wantErr: "MAX_CONCURRENT_RUNS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := TestConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetBindAddress(t *testing.T) {
	cfg := TestConfig()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 3000
	assert.Equal(t, "0.0.0.0:3000", cfg.GetBindAddress())
}
