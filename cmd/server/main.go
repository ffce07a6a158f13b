// Package main is the entry point for the Pharmacast dashboard server.
// The application projects revenue, operating profit, and break-even year
// for the Ianalumab program from a handful of user-adjustable financial
// assumptions, serving a JSON API plus an embedded web dashboard.
//
// Startup sequence:
// 1. Load configuration from environment variables (.env supported)
// 2. Initialize structured logging
// 3. Start HTTP server (API + embedded frontend)
// 4. Wait for shutdown signal and drain connections gracefully
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/pharmacast/internal/config"
	"github.com/aristath/pharmacast/internal/server"
	"github.com/aristath/pharmacast/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting Pharmacast")

	srv := server.New(server.Config{
		Log:    log,
		Config: cfg,
	})

	// Run the server in a goroutine so the main goroutine can wait for
	// shutdown signals.
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("Shutdown complete")
}
