package coach

import (
	"os"
	"strconv"
)

// Config holds all configuration for the ML coaching subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults. The coaching
// service is optional, so calls degrade to static fallbacks when it is
// disabled or unreachable.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		LogCalls:   false,
		Endpoint:   "http://localhost:8000",
		TimeoutMs:  5000,
		MaxRetries: 1,
	}
}

// LoadConfig reads coaching configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FOCUSWAVE_ML_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FOCUSWAVE_ML_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FOCUSWAVE_ML_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("FOCUSWAVE_ML_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FOCUSWAVE_ML_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	return cfg
}
