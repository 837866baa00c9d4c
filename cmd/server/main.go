// Package main implements the entry point for the kelist API server,
// a multi-tenant task list service with JWT authentication.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/kelist/kelist-api/internal/config"
	"github.com/kelist/kelist-api/internal/platform/logger"
	"github.com/kelist/kelist-api/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run wires configuration, logging, the database and the application
// together, then serves until a shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}

	if err := postgres.RunMigrations(db, appLogger); err != nil {
		return err
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.serve(context.Background())
}
