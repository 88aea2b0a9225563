// Package main implements the entry point for the TaskTrack API server,
// which provides user registration, login, and per-user task management
// over a JSON HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/tasktrack/api/internal/config"
)

// main wires together configuration, logging, the database, and the HTTP
// server, then runs until a shutdown signal arrives.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run performs all startup steps and blocks serving requests. It is split
// out of main so every failure path flows through a single error return.
func run() error {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application and any initialization error.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	// Bring the schema up to date before any store touches the tables.
	if err := runMigrations(ctx, db, appLogger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return app, nil
}
