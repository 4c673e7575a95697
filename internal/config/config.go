package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config captures runtime configuration values used by the health service.
type Config struct {
	// ServerAddress is the host:port pair the HTTP server listens on. Defaults to ":8080".
	ServerAddress string

	// LogMode selects the zap preset: "production" (JSON) or "development" (console).
	LogMode string

	// Testing marks the process as running under a test harness. It silences
	// logging and has no effect on handler behaviour.
	Testing bool
}

const (
	defaultServerAddress = ":8080"
	defaultLogMode       = LogModeProduction
	envServerAddress     = "SERVER_ADDR"
	envLogMode           = "LOG_MODE"
	envTesting           = "APP_TESTING"
)

// Recognised LogMode values.
const (
	LogModeProduction  = "production"
	LogModeDevelopment = "development"
)

// Load reads configuration from environment variables, applies defaults, and returns
// a Config structure. Invalid values return an error naming the variable.
func Load() (Config, error) {
	cfg := Config{
		ServerAddress: firstNonEmpty(os.Getenv(envServerAddress), defaultServerAddress),
		LogMode:       firstNonEmpty(os.Getenv(envLogMode), defaultLogMode),
	}

	switch cfg.LogMode {
	case LogModeProduction, LogModeDevelopment:
	default:
		return Config{}, fmt.Errorf("invalid %s %q: want %q or %q", envLogMode, cfg.LogMode, LogModeProduction, LogModeDevelopment)
	}

	if value := os.Getenv(envTesting); value != "" {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", envTesting, err)
		}
		cfg.Testing = enabled
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
