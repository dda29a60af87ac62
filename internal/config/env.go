package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_GROUP"); v != "" {
		cfg.Group = boolFromString(v)
	}
	if v := os.Getenv("TODO_OWNER"); v != "" {
		cfg.Owner = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	// https://no-color.org
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Theme = "mono"
	}
}

func boolFromString(v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return v == "yes" || v == "on"
	}
	return b
}
