package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port              int
	DevMode           bool
	LogLevel          string
	PositionsPath     string
	MetricsDBPath     string
	HistoryDir        string
	RulesPath         string
	RefreshSchedule   string
	NetLiquidity      float64
	BetaWeightedDelta float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvAsInt("PORT", 8010),
		DevMode:           getEnvAsBool("DEV_MODE", false),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		PositionsPath:     getEnv("POSITIONS_PATH", "./data/positions.csv"),
		MetricsDBPath:     getEnv("METRICS_DB_PATH", "./data/metrics.db"),
		HistoryDir:        getEnv("HISTORY_DIR", "./data/history"),
		RulesPath:         getEnv("RULES_PATH", "./config/rules.yaml"),
		RefreshSchedule:   getEnv("REFRESH_SCHEDULE", "@every 15m"),
		NetLiquidity:      getEnvAsFloat("NET_LIQUIDITY", 0),
		BetaWeightedDelta: getEnvAsFloat("BETA_WEIGHTED_DELTA", 0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.PositionsPath == "" {
		return fmt.Errorf("POSITIONS_PATH is required")
	}
	if c.MetricsDBPath == "" {
		return fmt.Errorf("METRICS_DB_PATH is required")
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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
