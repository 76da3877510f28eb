package main

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devhussain7/medium-api/internal/config"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 8080, LogLevel: "info"},
		Database: config.DatabaseConfig{URL: "postgres://localhost:5432/medium"},
		Auth:     config.AuthConfig{JWTSecret: secret, TokenLifetimeMinutes: 60},
	}
}

func TestNewApplication(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// sql.Open validates the driver without connecting, so wiring can be
	// exercised with no database running.
	db, err := sql.Open("pgx", "postgres://localhost:5432/medium")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	t.Run("wires all services", func(t *testing.T) {
		app, err := newApplication(testConfig("test-secret-key-thats-long-enough-for-hs256"), logger, db)
		require.NoError(t, err)
		assert.NotNil(t, app.jwtService)
		assert.NotNil(t, app.userService)
		assert.NotNil(t, app.postService)
	})

	t.Run("unusable jwt secret surfaces as an error", func(t *testing.T) {
		app, err := newApplication(testConfig("short"), logger, db)
		assert.Error(t, err)
		assert.Nil(t, app)
	})
}
