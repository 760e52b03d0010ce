package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Bool reads a boolean environment variable. Unset returns fallback; a
// value strconv.ParseBool rejects logs a warning and returns fallback.
func Bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		warnInvalid("bool", key, v, fallback)
		return fallback
	}
	return b
}

// PositiveInt reads an integer environment variable that must be above zero.
func PositiveInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		warnInvalid("int", key, v, fallback)
		return fallback
	}
	return n
}

// Duration reads a time.ParseDuration value. Zero is allowed and negative
// durations are rejected.
func Duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d < 0 {
		warnInvalid("duration", key, v, fallback)
		return fallback
	}
	return d
}

// Level reads a slog level name such as "debug" or "WARN".
func Level(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		warnInvalid("log level", key, v, fallback)
		return fallback
	}
	return level
}

func warnInvalid(kind, key, value string, fallback any) {
	slog.Warn("invalid "+kind+" env var, using default", "key", key, "value", value, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
}
