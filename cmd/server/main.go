// Package main implements the entry point for the conversion API
// server, which converts quantities between units across fixed
// categories and live currency rates, including a natural-language
// entry path.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/usama6513/convert-api/internal/config"
	"github.com/usama6513/convert-api/internal/platform/logger"
)

// main is the entry point for the convert-api server.
// It initializes configuration, sets up logging, wires the application
// dependencies, and starts the HTTP server.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up logging.
// Returns the loaded config, the configured logger, and any error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Rates.APIKey != "" {
		appLogger.Debug("Rate service configuration", "api_key_present", true)
	} else {
		appLogger.Warn("No exchange-rate API key configured; currency conversions will fail")
	}

	return cfg, appLogger, nil
}
