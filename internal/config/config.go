// Package config loads service configuration from environment variables and
// validates it before anything else starts.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"watchlist-screening/internal/matching"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Storage   StorageConfig
	Matching  matching.Config
	Screening ScreeningConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        // Default: "127.0.0.1"
	Port            int           // Default: 3000
	ShutdownTimeout time.Duration // Default: 30s
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // Default: "info" (trace, debug, info, warn, error, fatal, panic)
	Environment string // production|development|staging|test (affects format)
}

// StorageConfig locates the input, watchlist, and output documents.
type StorageConfig struct {
	DataDir       string // Default: "data"
	OutputDir     string // Default: "output"
	WatchlistPath string // Default: "watchlist.json"
}

// ScreeningConfig holds pipeline runtime settings.
type ScreeningConfig struct {
	// MaxConcurrentRuns bounds simultaneous comparison passes.
	// Zero means one per CPU.
	MaxConcurrentRuns int

	// WatchlistReloadSpec is the cron expression (with seconds) for refreshing
	// the cached watchlist. Empty disables the refresh job.
	WatchlistReloadSpec string
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed for %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Constants for default values
const (
	DefaultServerHost          = "127.0.0.1"
	DefaultServerPort          = 3000
	DefaultShutdownTimeout     = 30 * time.Second
	DefaultLogLevel            = "info"
	DefaultEnvironment         = "development"
	DefaultDataDir             = "data"
	DefaultOutputDir           = "output"
	DefaultWatchlistPath       = "watchlist.json"
	DefaultWatchlistReloadSpec = "0 */5 * * * *"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("HOST", DefaultServerHost),
			Port:            getEnvAsInt("PORT", DefaultServerPort),
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", DefaultLogLevel),
			Environment: getEnv("APP_ENV", DefaultEnvironment),
		},
		Storage: StorageConfig{
			DataDir:       getEnv("DATA_DIR", DefaultDataDir),
			OutputDir:     getEnv("OUTPUT_DIR", DefaultOutputDir),
			WatchlistPath: getEnv("WATCHLIST_PATH", DefaultWatchlistPath),
		},
		Matching: matching.Config{
			CharWeight:          getEnvAsFloat("MATCH_CHAR_WEIGHT", matching.DefaultCharWeight),
			TokenWeight:         getEnvAsFloat("MATCH_TOKEN_WEIGHT", matching.DefaultTokenWeight),
			TokenMatchThreshold: getEnvAsFloat("MATCH_TOKEN_THRESHOLD", matching.DefaultTokenMatchThreshold),
			ExactThreshold:      getEnvAsFloat("MATCH_EXACT_THRESHOLD", matching.DefaultExactThreshold),
			PossibleThreshold:   getEnvAsFloat("MATCH_POSSIBLE_THRESHOLD", matching.DefaultPossibleThreshold),
		},
		Screening: ScreeningConfig{
			MaxConcurrentRuns:   getEnvAsInt("MAX_CONCURRENT_RUNS", 0),
			WatchlistReloadSpec: getEnv("WATCHLIST_RELOAD_SPEC", DefaultWatchlistReloadSpec),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration for errors
func (c *Config) Validate() error {
	var errors ValidationErrors

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "PORT",
			Message: fmt.Sprintf("port must be between 0 and 65535, got %d", c.Server.Port),
		})
	}

	validLogLevels := []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
	if !contains(validLogLevels, strings.ToLower(c.Logger.Level)) {
		errors = append(errors, ValidationError{
			Field:   "LOG_LEVEL",
			Message: fmt.Sprintf("invalid log level %q, must be one of: %v", c.Logger.Level, validLogLevels),
		})
	}

	validEnvs := []string{"production", "development", "staging", "test"}
	if !contains(validEnvs, c.Logger.Environment) {
		errors = append(errors, ValidationError{
			Field:   "APP_ENV",
			Message: fmt.Sprintf("invalid environment %q, must be one of: %v", c.Logger.Environment, validEnvs),
		})
	}

	if c.Storage.DataDir == "" {
		errors = append(errors, ValidationError{Field: "DATA_DIR", Message: "data directory is required"})
	}
	if c.Storage.OutputDir == "" {
		errors = append(errors, ValidationError{Field: "OUTPUT_DIR", Message: "output directory is required"})
	}
	if c.Storage.WatchlistPath == "" {
		errors = append(errors, ValidationError{Field: "WATCHLIST_PATH", Message: "watchlist path is required"})
	}

	if err := c.Matching.Validate(); err != nil {
		errors = append(errors, ValidationError{Field: "MATCH_*", Message: err.Error()})
	}

	if c.Screening.MaxConcurrentRuns < 0 {
		errors = append(errors, ValidationError{
			Field:   "MAX_CONCURRENT_RUNS",
			Message: fmt.Sprintf("must be >= 0, got %d", c.Screening.MaxConcurrentRuns),
		})
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Logger.Environment == "production"
}

// GetBindAddress returns the server bind address in format "host:port"
func (c *Config) GetBindAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Helper functions for parsing environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// TestConfig creates a test configuration with sensible defaults for testing
func TestConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultServerHost,
			Port:            0, // Random port for tests
			ShutdownTimeout: 5 * time.Second,
		},
		Logger: LoggerConfig{
			Level:       "debug",
			Environment: "test",
		},
		Storage: StorageConfig{
			DataDir:       "testdata/data",
			OutputDir:     "testdata/output",
			WatchlistPath: "testdata/watchlist.json",
		},
		Matching: matching.DefaultConfig(),
		Screening: ScreeningConfig{
			MaxConcurrentRuns:   1,
			WatchlistReloadSpec: "",
		},
	}
}
