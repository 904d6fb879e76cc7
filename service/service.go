package service

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tulisaja/tulisaja/internal/auth"
	"github.com/tulisaja/tulisaja/internal/generator"
	"github.com/tulisaja/tulisaja/internal/handlers"
	"github.com/tulisaja/tulisaja/internal/jobs"
	"github.com/tulisaja/tulisaja/internal/modelapi"
	"github.com/tulisaja/tulisaja/internal/session"
	"github.com/tulisaja/tulisaja/storage"
)

type Service struct {
	storage         *storage.Storage
	config          *Config
	sessions        *session.Manager
	authHandler     *handlers.AuthHandler
	generateHandler *handlers.GenerateHandler
	contentsHandler *handlers.ContentsHandler
	exportHandler   *handlers.ExportHandler
	metaHandler     *handlers.MetaHandler
	adminHandler    *handlers.AdminHandler
	cacheSweeper    *jobs.CacheSweeper
}

func New(store *storage.Storage, config *Config) *Service {
	sessions := session.NewManager(config.Session.Secret, config.Session.Secure)

	client := modelapi.NewClient(config.ModelAPI.Endpoint, config.ModelAPI.APIKey, config.ModelAPI.Timeout)
	generatorService := generator.New(store, client)

	// Hourly prompt-cache sweep; stopped again via Shutdown.
	cacheSweeper := jobs.NewCacheSweeper(store)
	cacheSweeper.Start(context.Background())

	return &Service{
		storage:         store,
		config:          config,
		sessions:        sessions,
		authHandler:     handlers.NewAuthHandler(store, sessions),
		generateHandler: handlers.NewGenerateHandler(generatorService),
		contentsHandler: handlers.NewContentsHandler(store),
		exportHandler:   handlers.NewExportHandler(store, config.BaseURL),
		metaHandler:     handlers.NewMetaHandler(store),
		adminHandler:    handlers.NewAdminHandler(store),
		cacheSweeper:    cacheSweeper,
	}
}

// Shutdown stops background jobs. Called during graceful shutdown.
func (s *Service) Shutdown() {
	s.cacheSweeper.Stop()
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	loadUser := auth.LoadUser(s.sessions, s.storage)

	e.GET("/health", s.handleHealth)

	// Auth routes are public, but LoadUser still runs so /auth/me can
	// answer for an existing session.
	authGroup := e.Group("/auth", loadUser)
	authGroup.POST("/signup", s.authHandler.HandleSignup)
	authGroup.POST("/login", s.authHandler.HandleLogin)
	authGroup.POST("/logout", s.authHandler.HandleLogout)
	authGroup.GET("/me", s.authHandler.HandleMe)

	// Everything under /api requires a signed-in user
	api := e.Group("/api", loadUser, auth.RequireAuth())

	api.GET("/meta", s.metaHandler.HandleMeta)
	api.POST("/generate", s.generateHandler.HandleGenerate)
	api.GET("/usage", s.generateHandler.HandleUsage)

	// Content history and editing. The bulk export route must not be
	// captured by the :id routes.
	api.GET("/contents", s.contentsHandler.HandleListContents)
	api.GET("/contents/export", s.exportHandler.HandleExportHistory)
	api.GET("/contents/:id", s.contentsHandler.HandleGetContent)
	api.PUT("/contents/:id", s.contentsHandler.HandleUpdateContent)
	api.DELETE("/contents/:id", s.contentsHandler.HandleDeleteContent)
	api.POST("/contents/:id/favorite", s.contentsHandler.HandleToggleFavorite)
	api.POST("/contents/:id/copied", s.contentsHandler.HandleMarkCopied)
	api.GET("/contents/:id/export", s.exportHandler.HandleExportContent)
	api.GET("/contents/:id/card", s.exportHandler.HandleShareCard)

	// Admin routes - protected with RequireAdmin middleware
	admin := api.Group("/admin", auth.RequireAdmin())
	admin.GET("/stats", s.adminHandler.HandleStats)
	admin.GET("/users", s.adminHandler.HandleListUsers)
	admin.PUT("/users/:id/limits", s.adminHandler.HandleUpdateUserLimits)
	admin.POST("/categories", s.adminHandler.HandleCreateCategory)
	admin.PUT("/categories/:id", s.adminHandler.HandleUpdateCategory)
	admin.DELETE("/categories/:id", s.adminHandler.HandleDeleteCategory)
	admin.POST("/content-types", s.adminHandler.HandleCreateContentType)
	admin.PUT("/content-types/:id", s.adminHandler.HandleUpdateContentType)
	admin.DELETE("/content-types/:id", s.adminHandler.HandleDeleteContentType)
	admin.DELETE("/cache", s.adminHandler.HandlePurgeCache)
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
