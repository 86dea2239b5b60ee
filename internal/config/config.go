package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the driver's runtime settings. The ledger core itself reads
// no environment; everything here only shapes logging, metrics, and demo
// seeding around it.
type Config struct {
	LogLevel      string
	LogFormat     string
	MetricsAddr   string
	DemoCustomers int
}

// Load reads configuration from the environment, honoring a .env file when
// present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		MetricsAddr:   getEnv("METRICS_ADDR", ""),
		DemoCustomers: getIntEnv("DEMO_CUSTOMERS", 0),
	}
}

// SlogLevel maps the configured level name onto slog's levels.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
