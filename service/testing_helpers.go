package service

import (
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tulisaja/tulisaja/internal/generator"
	"github.com/tulisaja/tulisaja/internal/handlers"
	"github.com/tulisaja/tulisaja/internal/jobs"
	"github.com/tulisaja/tulisaja/internal/modelapi"
	"github.com/tulisaja/tulisaja/internal/session"
	"github.com/tulisaja/tulisaja/storage"
	"github.com/tulisaja/tulisaja/storage/db"
)

// setupTestService creates a service instance backed by an in-memory
// database. The model client points at backendURL so tests can stand in
// for the remote API with httptest. The cache sweeper is constructed but
// not started; route tests don't exercise background jobs.
func setupTestService(t *testing.T, backendURL string) (*Service, *db.Queries) {
	t.Helper()

	store, queries, cleanup, err := storage.NewTestDB()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
	}
	config.Session.Secret = "test-secret-key-for-route-tests"
	config.ModelAPI.Endpoint = backendURL
	config.ModelAPI.APIKey = "test-key"
	config.ModelAPI.Timeout = 2 * time.Second

	sessions := session.NewManager(config.Session.Secret, config.Session.Secure)
	client := modelapi.NewClient(config.ModelAPI.Endpoint, config.ModelAPI.APIKey, config.ModelAPI.Timeout)

	svc := &Service{
		storage:         store,
		config:          config,
		sessions:        sessions,
		authHandler:     handlers.NewAuthHandler(store, sessions),
		generateHandler: handlers.NewGenerateHandler(generator.New(store, client)),
		contentsHandler: handlers.NewContentsHandler(store),
		exportHandler:   handlers.NewExportHandler(store, config.BaseURL),
		metaHandler:     handlers.NewMetaHandler(store),
		adminHandler:    handlers.NewAdminHandler(store),
		cacheSweeper:    jobs.NewCacheSweeper(store),
	}
	return svc, queries
}

// setupTestEcho creates an Echo instance with all routes registered.
func setupTestEcho(t *testing.T, backendURL string) (*echo.Echo, *db.Queries) {
	t.Helper()

	e := echo.New()
	svc, queries := setupTestService(t, backendURL)
	svc.RegisterRoutes(e)

	return e, queries
}
