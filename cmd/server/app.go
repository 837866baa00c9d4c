package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kelist/kelist-api/internal/api"
	"github.com/kelist/kelist-api/internal/config"
	"github.com/kelist/kelist-api/internal/events"
	"github.com/kelist/kelist-api/internal/platform/postgres"
	"github.com/kelist/kelist-api/internal/service"
	"github.com/kelist/kelist-api/internal/service/auth"
)

// application holds the composed dependency graph of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	tokenService auth.TokenService

	authHandler     *api.AuthHandler
	userHandler     *api.UserHandler
	taskListHandler *api.TaskListHandler
	taskItemHandler *api.TaskItemHandler
}

// newApplication builds every component from the outside in: store,
// event publisher, services, then HTTP handlers.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	userStore := postgres.NewPostgresUserStore(db, logger)

	publisher := events.NewInMemoryPublisher(logger)
	publisher.RegisterHandler(events.NewUserEventLogger(logger))

	passwordService := auth.NewBcryptPasswordService(cfg.Auth.BcryptCost)

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	authService := auth.NewAuthService(userStore, passwordService, tokenService, publisher, db, logger)
	userService := service.NewUserService(userStore, passwordService, publisher, db, logger)
	taskListService := service.NewTaskListService(userStore, db, logger)
	taskItemService := service.NewTaskItemService(userStore, db, logger)

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		tokenService:    tokenService,
		authHandler:     api.NewAuthHandler(authService),
		userHandler:     api.NewUserHandler(userService),
		taskListHandler: api.NewTaskListHandler(taskListService),
		taskItemHandler: api.NewTaskItemHandler(taskItemService),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
