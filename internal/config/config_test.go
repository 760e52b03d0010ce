package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv clears every SWAGGER_TOOLS_* variable to isolate tests from the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvTestMode, EnvTestModeAlias, EnvHTTPTimeout, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c := Load()

	assert.False(t, c.TestMode)
	assert.Zero(t, c.HTTPTimeout)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
	assert.Equal(t, Default(), c)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTestMode, "true")
	t.Setenv(EnvHTTPTimeout, "30s")
	t.Setenv(EnvLogLevel, "debug")

	c := Load()

	assert.True(t, c.TestMode)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoad_TestModeAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTestModeAlias, "1")

	assert.True(t, Load().TestMode)
}

func TestLoad_InvalidValues_UseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTestMode, "maybe")
	t.Setenv(EnvHTTPTimeout, "-5s")
	t.Setenv(EnvLogLevel, "loud")

	c := Load()

	assert.False(t, c.TestMode)
	assert.Zero(t, c.HTTPTimeout)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"debug", slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvLogLevel, tt.value)
			assert.Equal(t, tt.want, Level(EnvLogLevel, slog.LevelWarn))
		})
	}
}
