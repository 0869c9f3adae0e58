package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port           int
	LogLevel       string
	DevMode        bool
	Simulations    int     // Monte Carlo trials per assessment
	Confidence     float64 // VaR confidence level
	VaRMethod      string  // "historical" or "parametric"
	MonteCarloSeed int64   // 0 = time-based seeding
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnvAsInt("GO_PORT", 8001),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DevMode:        getEnvAsBool("DEV_MODE", false),
		Simulations:    getEnvAsInt("MC_SIMULATIONS", 10000),
		Confidence:     getEnvAsFloat("VAR_CONFIDENCE", 0.95),
		VaRMethod:      getEnv("VAR_METHOD", "historical"),
		MonteCarloSeed: int64(getEnvAsInt("MC_SEED", 0)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("VAR_CONFIDENCE must be in (0,1), got %v", c.Confidence)
	}
	if c.Simulations <= 0 {
		return fmt.Errorf("MC_SIMULATIONS must be positive, got %d", c.Simulations)
	}
	if c.VaRMethod != "historical" && c.VaRMethod != "parametric" {
		return fmt.Errorf("VAR_METHOD must be historical or parametric, got %q", c.VaRMethod)
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
