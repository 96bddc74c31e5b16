// internal/config/config.go
// Centralized configuration management
// Loads from environment variables with sensible defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string
	BaseURL     string

	// CORS
	CORSAllowedOrigins []string

	// Mock backend behavior
	SimulatedLatency time.Duration // artificial delay per store operation; 0 disables
	SeedDemoData     bool          // load the demo fixtures on startup

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", ""),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		SimulatedLatency: getEnvDuration("SIMULATED_LATENCY", "0ms"),
		SeedDemoData:     getEnvBool("SEED_DEMO_DATA", true),

		ReadTimeout:     getEnvDuration("READ_TIMEOUT", "15s"),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", "15s"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", "10s"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	if c.SimulatedLatency < 0 {
		return fmt.Errorf("simulated latency cannot be negative")
	}

	// The write timeout bounds each request; a larger artificial delay
	// would make every operation time out.
	if c.SimulatedLatency >= c.WriteTimeout {
		return fmt.Errorf("simulated latency (%s) must be below the write timeout (%s)", c.SimulatedLatency, c.WriteTimeout)
	}

	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin is required")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Helper functions

// getEnv gets a string value from environment with a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets a duration value from environment with a default
func getEnvDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

// getEnvBool gets a boolean value from environment with a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
