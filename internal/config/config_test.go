package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "30s", cfg.Database.QueryTimeout)
	assert.Equal(t, "~/.cache/schemascout", cfg.Cache.Directory)
	assert.Equal(t, 1, cfg.Cache.TTLHours)
	assert.True(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Search.Accelerated)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Mock.Enabled)
}

func TestLoadConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.json")

	testConfig := map[string]interface{}{
		"database": map[string]interface{}{
			"driver": "duckdb",
			"dsn":    "/data/catalog.db",
		},
		"cache": map[string]interface{}{
			"directory": "/custom/cache",
			"ttl_hours": 4,
		},
		"logging": map[string]interface{}{
			"level":  "debug",
			"format": "json",
		},
		"search": map[string]interface{}{
			"accelerated": false,
		},
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	require.NoError(t, err)

	err = os.WriteFile(configPath, data, 0600)
	require.NoError(t, err)

	config := DefaultConfig()
	err = loadConfigFromFile(config, configPath)
	require.NoError(t, err)

	assert.Equal(t, "duckdb", config.Database.Driver)
	assert.Equal(t, "/data/catalog.db", config.Database.DSN)
	assert.Equal(t, "/custom/cache", config.Cache.Directory)
	assert.Equal(t, 4, config.Cache.TTLHours)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.False(t, config.Search.Accelerated)
}

func TestLoadConfigFromFileInvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.json")

	require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0600))

	config := DefaultConfig()
	err := loadConfigFromFile(config, configPath)
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(_ *Config) {}, false},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"bad driver", func(c *Config) { c.Database.Driver = "oracle" }, true},
		{"non-positive ttl", func(c *Config) { c.Cache.TTLHours = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x"), expandPath("~/x"))
	assert.Equal(t, home, expandPath("~"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
}
