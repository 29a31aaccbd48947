package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, "/mcp", cfg.Server.MCPPath)
	assert.True(t, cfg.Server.Stateless)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "https://wttr.in", cfg.WeatherAPI.BaseURL)
	assert.Equal(t, "j1", cfg.WeatherAPI.Format)
	assert.Equal(t, 10*time.Second, cfg.WeatherAPI.Timeout)
	assert.Equal(t, 0, cfg.CircuitBreaker.Threshold)
	assert.Equal(t, 30*time.Second, cfg.CircuitBreaker.Timeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"PORT":                      "8081",
		"MCP_PATH":                  "rpc",
		"LOG_LEVEL":                 "warn",
		"WEATHER_BASE_URL":          "http://localhost:9999",
		"WEATHER_TIMEOUT":           "2s",
		"CIRCUIT_BREAKER_THRESHOLD": "5",
		"CIRCUIT_BREAKER_TIMEOUT":   "1m",
	}))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.Addr())
	assert.Equal(t, "/rpc", cfg.Server.MCPPath)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, "http://localhost:9999", cfg.WeatherAPI.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.WeatherAPI.Timeout)
	assert.Equal(t, 5, cfg.CircuitBreaker.Threshold)
	assert.Equal(t, time.Minute, cfg.CircuitBreaker.Timeout)
}

func TestFromEnv_Stateless(t *testing.T) {
	tests := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"1":     true,
		"Yes":   true,
		"false": false,
		"0":     false,
		"no":    false,
		"on":    false,
	}

	for value, want := range tests {
		cfg, err := FromEnv(envOf(map[string]string{"STATELESS": value}))
		require.NoError(t, err)
		assert.Equal(t, want, cfg.Server.Stateless, "STATELESS=%q", value)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"port not a number": {"PORT": "http"},
		"port out of range": {"PORT": "70000"},
		"bad duration":      {"WEATHER_TIMEOUT": "ten seconds"},
		"bad threshold":     {"CIRCUIT_BREAKER_THRESHOLD": "many"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envOf(env))
			assert.Error(t, err)
		})
	}
}
