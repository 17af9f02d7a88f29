package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/fredcamaral/declaim/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment overrides
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Parser: entities.ParserConfig{
			DefaultLanguage: getEnvOrDefault("DECLAIM_DEFAULT_LANGUAGE", "bash"),
			DefaultRunner:   getEnvOrDefault("DECLAIM_DEFAULT_RUNNER", "bash"),
			MaxIncludeDepth: getEnvIntOrDefault("DECLAIM_MAX_INCLUDE_DEPTH", 64),
		},
		Render: entities.RenderConfig{
			Sanitize: getEnvBoolOrDefault("DECLAIM_SANITIZE", false),
		},
		Server: entities.ServerConfig{
			Host:            getEnvOrDefault("DECLAIM_HOST", "localhost"),
			Port:            getEnvIntOrDefault("DECLAIM_PORT", 4200),
			ReadTimeout:     getEnvIntOrDefault("DECLAIM_READ_TIMEOUT", 30),
			WriteTimeout:    getEnvIntOrDefault("DECLAIM_WRITE_TIMEOUT", 30),
			ShutdownTimeout: getEnvIntOrDefault("DECLAIM_SHUTDOWN_TIMEOUT", 5),
			CORSOrigins: getEnvSliceOrDefault("DECLAIM_CORS_ORIGINS", []string{
				"http://localhost:4200",
				"http://127.0.0.1:4200",
			}),
		},
		Watcher: entities.WatcherConfig{
			IntervalMs: getEnvIntOrDefault("DECLAIM_WATCH_INTERVAL", 200),
			DebounceMs: getEnvIntOrDefault("DECLAIM_WATCH_DEBOUNCE", 500),
		},
		Logging: entities.LoggingConfig{
			Level:   getEnvOrDefault("DECLAIM_LOG_LEVEL", "info"),
			Verbose: getEnvBoolOrDefault("DECLAIM_LOG_VERBOSE", false),
		},
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvSliceOrDefault returns environment variable as a comma-separated
// slice or default
func getEnvSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
