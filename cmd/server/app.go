package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/devhussain7/medium-api/internal/config"
	"github.com/devhussain7/medium-api/internal/platform/postgres"
	"github.com/devhussain7/medium-api/internal/service"
	"github.com/devhussain7/medium-api/internal/service/auth"
)

// application bundles the process-wide dependencies: configuration, the
// pooled database handle and the wired services. It is constructed once at
// startup; request handling shares nothing else.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService  auth.JWTService
	userService service.UserService
	postService service.PostService
}

// newApplication wires the stores and services on top of the shared
// database pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	bcryptVerifier := auth.NewBcryptVerifier()
	userStore := postgres.NewPostgresUserStore(db, logger)
	postStore := postgres.NewPostgresPostStore(db, logger)

	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		jwtService: jwtService,
		userService: service.NewUserService(
			userStore,
			jwtService,
			bcryptVerifier,
			bcryptVerifier,
			db,
			logger,
		),
		postService: service.NewPostService(postStore, logger),
	}, nil
}

// cleanup releases process-wide resources on shutdown.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
