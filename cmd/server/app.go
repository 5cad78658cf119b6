package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/handover-labs/handover/internal/config"
	"github.com/handover-labs/handover/internal/platform/postgres"
	"github.com/handover-labs/handover/internal/service"
	"github.com/handover-labs/handover/internal/service/auth"
	"github.com/handover-labs/handover/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	itemStore store.ItemStore

	// Service interfaces
	tokenService    auth.TokenService
	userService     service.UserService
	itemService     service.ItemService
	transferService service.TransferService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized",
		"session_lifetime_minutes", cfg.Auth.SessionTokenLifetimeMinutes,
		"transfer_lifetime_minutes", cfg.Auth.TransferTokenLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.itemStore = postgres.NewPostgresItemStore(db, logger)

	hasher := auth.NewBcryptHasher()

	app.userService = service.NewUserService(
		app.userStore,
		app.tokenService,
		hasher,
		hasher,
		db,
		logger,
	)
	app.itemService = service.NewItemService(app.itemStore, logger)
	app.transferService = service.NewTransferService(
		app.userStore,
		app.itemStore,
		app.tokenService,
		db,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
