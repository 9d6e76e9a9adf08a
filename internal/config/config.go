// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/aristath/jyotish/internal/modules/varga"
)

// Config holds application configuration
type Config struct {
	Port               int
	LogLevel           string
	DevMode            bool
	DefaultDivision    int    // Divisional chart drawn when a request names none
	DashaWatchSchedule string // Cron spec for the running-dasha watch
	Natal              *NatalConfig
}

// NatalConfig is the optional profile whose running dasha is watched.
// It is nil unless NATAL_BIRTH is set.
type NatalConfig struct {
	Birth         time.Time
	MoonLongitude float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvAsInt("JYOTISH_PORT", 8010),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DevMode:            getEnvAsBool("DEV_MODE", false),
		DefaultDivision:    getEnvAsInt("CHART_DEFAULT_DIVISION", 9),
		DashaWatchSchedule: getEnv("DASHA_WATCH_SCHEDULE", "@every 1h"),
	}

	if raw := getEnv("NATAL_BIRTH", ""); raw != "" {
		birth, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse NATAL_BIRTH: %w", err)
		}
		moon, err := getEnvAsFloat("NATAL_MOON_LONGITUDE")
		if err != nil {
			return nil, err
		}
		cfg.Natal = &NatalConfig{Birth: birth, MoonLongitude: moon}
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DefaultDivision != 1 && !varga.IsSupported(c.DefaultDivision) {
		return fmt.Errorf("unsupported default division D%d", c.DefaultDivision)
	}
	if c.Natal != nil {
		if c.Natal.MoonLongitude < 0 || c.Natal.MoonLongitude >= 360 {
			return fmt.Errorf("natal moon longitude %.4f outside [0, 360)", c.Natal.MoonLongitude)
		}
		if c.DashaWatchSchedule == "" {
			return fmt.Errorf("dasha watch schedule is required with a natal profile")
		}
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvAsFloat reads a required float variable
func getEnvAsFloat(key string) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return f, nil
}
