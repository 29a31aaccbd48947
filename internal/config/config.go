package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Host is fixed: the server always listens on all interfaces.
const Host = "0.0.0.0"

type Config struct {
	Server struct {
		Port         int           `mapstructure:"port"`
		MCPPath      string        `mapstructure:"mcp_path"`
		Stateless    bool          `mapstructure:"stateless"`
		ReadTimeout  time.Duration `mapstructure:"read_timeout"`
		WriteTimeout time.Duration `mapstructure:"write_timeout"`
		LogLevel     string        `mapstructure:"log_level"`
	} `mapstructure:"server"`

	WeatherAPI struct {
		BaseURL string        `mapstructure:"base_url"`
		Format  string        `mapstructure:"format"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"weather_api"`

	CircuitBreaker struct {
		Threshold int           `mapstructure:"threshold"`
		Timeout   time.Duration `mapstructure:"timeout"`
	} `mapstructure:"circuit_breaker"`
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", Host, c.Server.Port)
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from lookup, applying defaults for empty values.
func FromEnv(lookup func(string) string) (*Config, error) {
	getEnv := func(key, defaultValue string) string {
		if value := lookup(key); value != "" {
			return value
		}
		return defaultValue
	}

	raw := map[string]interface{}{
		"server": map[string]interface{}{
			"port":          getEnv("PORT", "3000"),
			"mcp_path":      getEnv("MCP_PATH", "/mcp"),
			"stateless":     parseBool(getEnv("STATELESS", "true")),
			"read_timeout":  getEnv("READ_TIMEOUT", "30s"),
			"write_timeout": getEnv("WRITE_TIMEOUT", "30s"),
			"log_level":     getEnv("LOG_LEVEL", "debug"),
		},
		"weather_api": map[string]interface{}{
			"base_url": getEnv("WEATHER_BASE_URL", "https://wttr.in"),
			"format":   getEnv("WEATHER_FORMAT", "j1"),
			"timeout":  getEnv("WEATHER_TIMEOUT", "10s"),
		},
		"circuit_breaker": map[string]interface{}{
			"threshold": getEnv("CIRCUIT_BREAKER_THRESHOLD", "0"),
			"timeout":   getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"),
		},
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid configuration: PORT %d out of range", cfg.Server.Port)
	}
	if !strings.HasPrefix(cfg.Server.MCPPath, "/") {
		cfg.Server.MCPPath = "/" + cfg.Server.MCPPath
	}

	return cfg, nil
}

// parseBool accepts true, 1 and yes in any case. Everything else is false.
func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
