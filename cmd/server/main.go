package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bobby-s-dev/wttr-mcp/internal/api"
	"github.com/bobby-s-dev/wttr-mcp/internal/config"
	"github.com/bobby-s-dev/wttr-mcp/internal/metrics"
	"github.com/bobby-s-dev/wttr-mcp/internal/services"
	"github.com/bobby-s-dev/wttr-mcp/pkg/client"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Production logger until the configured level is known
	bootstrap, _ := zap.NewProduction()
	zap.ReplaceGlobals(bootstrap)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize logger
	logger, err := newLogger(cfg.Server.LogLevel)
	if err != nil {
		bootstrap.Fatal("Invalid log level", zap.String("level", cfg.Server.LogLevel), zap.Error(err))
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting MCP server",
		zap.Bool("stateless", cfg.Server.Stateless),
		zap.String("weather_api", cfg.WeatherAPI.BaseURL))

	recorder := metrics.NewRecorder()

	// Initialize weather provider
	wttr := client.NewWttrClient(cfg.WeatherAPI.BaseURL, cfg.WeatherAPI.Format, client.ClientConfig{
		Timeout:        cfg.WeatherAPI.Timeout,
		Threshold:      cfg.CircuitBreaker.Threshold,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}, logger)

	// Initialize tools
	calculator := services.NewCalculator(logger)
	weather := services.NewWeatherService(wttr, recorder, logger)
	server := api.NewMCPServer(calculator, weather, recorder, logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		ErrorHandler:          api.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	// Setup handlers and routes
	api.SetupRoutes(app, api.NewHandler(logger), api.Routes{
		MCPPath:    cfg.Server.MCPPath,
		MCPHandler: api.NewMCPHandler(server, cfg.Server.Stateless),
		Registry:   recorder.Registry(),
	})

	// Start server in goroutine
	go func() {
		addr := cfg.Addr()
		logger.Info("MCP Server running on http://"+addr+cfg.Server.MCPPath,
			zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	return zapConfig.Build()
}
