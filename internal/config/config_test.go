package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.Duration(0), cfg.SimulatedLatency)
	assert.True(t, cfg.SeedDemoData)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SIMULATED_LATENCY", "250ms")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedLatency)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSAllowedOrigins)
}

func TestInvalidDurationFallsBackToDefault(t *testing.T) {
	t.Setenv("SIMULATED_LATENCY", "a little while")

	cfg := Load()
	assert.Equal(t, time.Duration(0), cfg.SimulatedLatency)
}

func TestValidateRejectsNegativeLatency(t *testing.T) {
	cfg := Load()
	cfg.SimulatedLatency = -time.Second

	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsLatencyAboveWriteTimeout(t *testing.T) {
	cfg := Load()
	cfg.SimulatedLatency = 20 * time.Second
	cfg.WriteTimeout = 15 * time.Second

	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresPort(t *testing.T) {
	cfg := Load()
	cfg.Port = ""

	assert.Error(t, cfg.Validate())
}
