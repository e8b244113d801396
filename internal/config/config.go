// Package config loads application configuration from an optional JSON file
// layered under environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `json:"database" envPrefix:"SCHEMASCOUT_"`
	Cache    CacheConfig    `json:"cache"    envPrefix:"SCHEMASCOUT_"`
	Search   SearchConfig   `json:"search"   envPrefix:"SCHEMASCOUT_"`
	Logging  LoggingConfig  `json:"logging"  envPrefix:"SCHEMASCOUT_"`
	Mock     MockConfig     `json:"mock"     envPrefix:"SCHEMASCOUT_"`
}

// DatabaseConfig configures the SQL backend the row fetcher runs against
type DatabaseConfig struct {
	Driver       string `json:"driver"        env:"DB_DRIVER"        envDefault:"sqlite"`
	DSN          string `json:"dsn"           env:"DB_DSN"           envDefault:""`
	QueryTimeout string `json:"query_timeout" env:"DB_QUERY_TIMEOUT" envDefault:"30s"`
}

// CacheConfig configures the on-disk metadata cache
type CacheConfig struct {
	Directory string `json:"directory" env:"CACHE_DIR"       envDefault:"~/.cache/schemascout"`
	TTLHours  int    `json:"ttl_hours" env:"CACHE_TTL_HOURS" envDefault:"1"`
	Enabled   bool   `json:"enabled"   env:"CACHE_ENABLED"   envDefault:"true"`
}

// SearchConfig configures the search engine selection and result limits
type SearchConfig struct {
	Accelerated bool `json:"accelerated" env:"SEARCH_ACCELERATED" envDefault:"true"`
	Limit       int  `json:"limit"       env:"SEARCH_LIMIT"       envDefault:"20"`
}

// LoggingConfig configures log output
type LoggingConfig struct {
	Level  string `json:"level"  env:"LOG_LEVEL"  envDefault:"info"` // debug, info, warn, error
	Format string `json:"format" env:"LOG_FORMAT" envDefault:"text"` // text, json
}

// MockConfig configures the synthetic-metadata fallback
type MockConfig struct {
	Enabled bool `json:"enabled" env:"MOCK_ENABLED" envDefault:"false"`
	Tables  int  `json:"tables"  env:"MOCK_TABLES"  envDefault:"20"`
}

// DefaultConfig returns the built-in defaults without consulting the
// environment or any config file.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "sqlite", QueryTimeout: "30s"},
		Cache:    CacheConfig{Directory: "~/.cache/schemascout", TTLHours: 1, Enabled: true},
		Search:   SearchConfig{Accelerated: true, Limit: 20},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Mock:     MockConfig{Tables: 20},
	}
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Load from config file if it exists
	configPath := getConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		if err := loadConfigFromFile(config, configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Apply environment variable overrides using env library (also sets defaults)
	if err := env.ParseWithOptions(config, env.Options{
		Prefix: "SCHEMASCOUT_",
	}); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadConfigFromFile loads configuration from a JSON file
func loadConfigFromFile(config *Config, configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	mergeConfigs(config, &fileConfig)

	return nil
}

// mergeConfigs merges source configuration into target configuration
func mergeConfigs(target, source *Config) {
	var mergeValues func(t, s reflect.Value)
	mergeValues = func(t, s reflect.Value) {
		if t.Kind() != s.Kind() {
			return
		}

		if t.Kind() == reflect.Struct {
			for i := range s.NumField() {
				mergeValues(t.Field(i), s.Field(i))
			}
		} else if s.Kind() == reflect.Bool {
			t.Set(s)
		} else if !s.IsZero() {
			t.Set(s)
		}
	}

	mergeValues(reflect.ValueOf(target).Elem(), reflect.ValueOf(source).Elem())
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf(
			"invalid log level: %s (must be debug, info, warn, or error)",
			config.Logging.Level,
		)
	}

	validLogFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validLogFormats[strings.ToLower(config.Logging.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", config.Logging.Format)
	}

	validDrivers := map[string]bool{
		"sqlite": true, "duckdb": true,
	}
	if !validDrivers[strings.ToLower(config.Database.Driver)] {
		return fmt.Errorf(
			"invalid database driver: %s (must be sqlite or duckdb)",
			config.Database.Driver,
		)
	}

	if config.Cache.TTLHours <= 0 {
		return fmt.Errorf("cache TTL must be positive: %d", config.Cache.TTLHours)
	}

	return nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() string {
	if configPath := os.Getenv("SCHEMASCOUT_CONFIG"); configPath != "" {
		return expandPath(configPath)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}

	return filepath.Join(homeDir, ".config", "schemascout", "config.json")
}

// expandPath expands ~ to home directory in file paths
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return homeDir
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// ExpandAllPaths expands all paths in the configuration
func (c *Config) ExpandAllPaths() {
	c.Cache.Directory = expandPath(c.Cache.Directory)
	c.Database.DSN = expandPath(c.Database.DSN)
}
