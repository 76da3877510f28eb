// Package main implements the entry point for the medium-api server,
// a blogging backend providing user signup/signin with token issuance
// and author-scoped CRUD over blog posts.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/devhussain7/medium-api/internal/config"
	"github.com/devhussain7/medium-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command (up, down, status) and exit; plain start applies 'up' before serving",
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrations(db, *migrateCmd); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		if err := db.Close(); err != nil {
			appLogger.Warn("failed to close database", "error", err)
		}
		return
	}

	// A plain start brings the schema up to date before serving.
	if err := runMigrations(db, "up"); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
