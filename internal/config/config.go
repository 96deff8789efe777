package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	DataDir     string // Directory holding the items/locations/regions/victory tables
	OptionsFile string // Player option file (JSON); empty means defaults
	RedisURL    string
	Environment string
	LogLevel    slog.Level
}

func Load() *Config {
	return &Config{
		DataDir:     getEnv("DATA_DIR", "./data"),
		OptionsFile: getEnv("OPTIONS_FILE", ""),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
