// Package config loads swagger-tools settings from SWAGGER_TOOLS_* environment
// variables.
package config

import (
	"log/slog"
	"time"
)

// Environment variable names.
const (
	EnvTestMode      = "SWAGGER_TOOLS_TEST_MODE"
	EnvTestModeAlias = "RUNNING_SWAGGER_TOOLS_TESTS"
	EnvHTTPTimeout   = "SWAGGER_TOOLS_HTTP_TIMEOUT"
	EnvLogLevel      = "SWAGGER_TOOLS_LOG_LEVEL"
)

// Config holds the settings the command router runs with.
type Config struct {
	// TestMode makes the router return failures unrendered instead of
	// printing a report, so a harness can inspect them.
	TestMode bool
	// HTTPTimeout bounds each remote fetch; zero means no timeout.
	HTTPTimeout time.Duration
	// LogLevel is the minimum level of the stderr logger.
	LogLevel slog.Level
}

// Default returns the configuration used when no environment variable is set.
func Default() Config {
	return Config{LogLevel: slog.LevelWarn}
}

// Load reads the configuration from the environment.
// Invalid values log a warning and fall back to the default.
func Load() Config {
	def := Default()
	testMode := Bool(EnvTestMode, false)
	if !testMode {
		testMode = Bool(EnvTestModeAlias, false)
	}
	return Config{
		TestMode:    testMode,
		HTTPTimeout: Duration(EnvHTTPTimeout, def.HTTPTimeout),
		LogLevel:    Level(EnvLogLevel, def.LogLevel),
	}
}
