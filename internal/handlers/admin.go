package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/tulisaja/tulisaja/internal/auth"
	"github.com/tulisaja/tulisaja/storage"
	"github.com/tulisaja/tulisaja/storage/db"
)

// activeUserWindow is the lookback for the active-user count in admin stats.
const activeUserWindow = 30 * 24 * time.Hour

// AdminHandler serves platform statistics, user management, and lookup CRUD
type AdminHandler struct {
	store *storage.Storage
}

func NewAdminHandler(store *storage.Storage) *AdminHandler {
	return &AdminHandler{store: store}
}

type AdminStatsResponse struct {
	TotalUsers       int64            `json:"total_users"`
	ActiveUsers      int64            `json:"active_users"`
	TotalContents    int64            `json:"total_contents"`
	ContentsByType   map[string]int64 `json:"contents_by_type"`
	EstimatedCostUsd float64          `json:"estimated_cost_usd"`
}

type AdminUserResponse struct {
	UserResponse
	DailyLimitOverride   *int64 `json:"daily_limit_override,omitempty"`
	MonthlyLimitOverride *int64 `json:"monthly_limit_override,omitempty"`
}

type UpdateLimitsRequest struct {
	DailyLimit   *int64 `json:"daily_limit"`
	MonthlyLimit *int64 `json:"monthly_limit"`
}

type CategoryRequest struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	SortOrder int64  `json:"sort_order"`
}

type ContentTypeRequest struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DefaultPlatform string `json:"default_platform"`
	MaxVariations   int64  `json:"max_variations"`
}

// HandleStats aggregates platform totals. The five counts are independent,
// so they run concurrently.
func (h *AdminHandler) HandleStats(c echo.Context) error {
	g, ctx := errgroup.WithContext(c.Request().Context())

	var stats AdminStatsResponse
	var byType []db.CountGeneratedContentsByTypeRow

	g.Go(func() error {
		var err error
		stats.TotalUsers, err = h.store.Queries.CountUsers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ActiveUsers, err = h.store.Queries.CountActiveUsersSince(ctx, time.Now().UTC().Add(-activeUserWindow))
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalContents, err = h.store.Queries.CountAllGeneratedContents(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		byType, err = h.store.Queries.CountGeneratedContentsByType(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.EstimatedCostUsd, err = h.store.Queries.SumEstimatedCost(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("failed to load admin stats", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load stats")
	}

	stats.ContentsByType = make(map[string]int64, len(byType))
	for _, row := range byType {
		stats.ContentsByType[row.ContentTypeID] = row.ContentCount
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) HandleListUsers(c echo.Context) error {
	users, err := h.store.Queries.ListUsers(c.Request().Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list users")
	}

	resp := make([]AdminUserResponse, len(users))
	for i, u := range users {
		resp[i] = AdminUserResponse{UserResponse: userToResponse(u)}
		if u.DailyLimitOverride.Valid {
			resp[i].DailyLimitOverride = &u.DailyLimitOverride.Int64
		}
		if u.MonthlyLimitOverride.Valid {
			resp[i].MonthlyLimitOverride = &u.MonthlyLimitOverride.Int64
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleUpdateUserLimits sets or clears per-user quota overrides. A null
// field clears the override back to the configured default.
func (h *AdminHandler) HandleUpdateUserLimits(c echo.Context) error {
	var req UpdateLimitsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.DailyLimit != nil && *req.DailyLimit < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Daily limit must not be negative")
	}
	if req.MonthlyLimit != nil && *req.MonthlyLimit < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Monthly limit must not be negative")
	}

	id := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.store.Queries.GetUser(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		slog.Error("failed to get user", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update limits")
	}

	params := db.UpdateUserLimitsParams{ID: id}
	if req.DailyLimit != nil {
		params.DailyLimitOverride = sql.NullInt64{Int64: *req.DailyLimit, Valid: true}
	}
	if req.MonthlyLimit != nil {
		params.MonthlyLimitOverride = sql.NullInt64{Int64: *req.MonthlyLimit, Valid: true}
	}

	if err := h.store.Queries.UpdateUserLimits(ctx, params); err != nil {
		slog.Error("failed to update user limits", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update limits")
	}

	user, err := h.store.Queries.GetUser(ctx, id)
	if err != nil {
		slog.Error("failed to reload user", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update limits")
	}

	slog.Info("user limits updated", "user_id", id, "daily", req.DailyLimit, "monthly", req.MonthlyLimit)

	resp := AdminUserResponse{UserResponse: userToResponse(user)}
	if user.DailyLimitOverride.Valid {
		resp.DailyLimitOverride = &user.DailyLimitOverride.Int64
	}
	if user.MonthlyLimitOverride.Valid {
		resp.MonthlyLimitOverride = &user.MonthlyLimitOverride.Int64
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) HandleCreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	req.ID = strings.TrimSpace(req.ID)
	req.Label = strings.TrimSpace(req.Label)
	if req.ID == "" || req.Label == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ID and label are required")
	}

	err := h.store.Queries.CreateProductCategory(c.Request().Context(), db.CreateProductCategoryParams{
		ID:        req.ID,
		Label:     req.Label,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return echo.NewHTTPError(http.StatusConflict, "Category already exists")
		}
		slog.Error("failed to create category", "error", err, "id", req.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create category")
	}

	return c.JSON(http.StatusCreated, Option{ID: req.ID, Label: req.Label})
}

func (h *AdminHandler) HandleUpdateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Label is required")
	}

	id := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.store.Queries.GetProductCategory(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		slog.Error("failed to get category", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update category")
	}

	err := h.store.Queries.UpdateProductCategory(ctx, db.UpdateProductCategoryParams{
		Label:     req.Label,
		SortOrder: req.SortOrder,
		ID:        id,
	})
	if err != nil {
		slog.Error("failed to update category", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update category")
	}

	return c.JSON(http.StatusOK, Option{ID: id, Label: req.Label})
}

func (h *AdminHandler) HandleDeleteCategory(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.store.Queries.GetProductCategory(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		slog.Error("failed to get category", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete category")
	}

	if err := h.store.Queries.DeleteProductCategory(ctx, id); err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return echo.NewHTTPError(http.StatusConflict, "Category is referenced by existing requests")
		}
		slog.Error("failed to delete category", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete category")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) HandleCreateContentType(c echo.Context) error {
	var req ContentTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	req.ID = strings.TrimSpace(req.ID)
	req.Label = strings.TrimSpace(req.Label)
	if req.ID == "" || req.Label == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ID and label are required")
	}
	if req.MaxVariations < 1 || req.MaxVariations > 10 {
		return echo.NewHTTPError(http.StatusBadRequest, "Max variations must be between 1 and 10")
	}

	err := h.store.Queries.CreateContentType(c.Request().Context(), db.CreateContentTypeParams{
		ID:              req.ID,
		Label:           req.Label,
		DefaultPlatform: sql.NullString{String: req.DefaultPlatform, Valid: req.DefaultPlatform != ""},
		MaxVariations:   req.MaxVariations,
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return echo.NewHTTPError(http.StatusConflict, "Content type already exists")
		}
		slog.Error("failed to create content type", "error", err, "id", req.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create content type")
	}

	return c.JSON(http.StatusCreated, ContentTypeOption{
		ID:              req.ID,
		Label:           req.Label,
		DefaultPlatform: req.DefaultPlatform,
		MaxVariations:   req.MaxVariations,
	})
}

func (h *AdminHandler) HandleUpdateContentType(c echo.Context) error {
	var req ContentTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Label is required")
	}
	if req.MaxVariations < 1 || req.MaxVariations > 10 {
		return echo.NewHTTPError(http.StatusBadRequest, "Max variations must be between 1 and 10")
	}

	id := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.store.Queries.GetContentType(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "Content type not found")
		}
		slog.Error("failed to get content type", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update content type")
	}

	err := h.store.Queries.UpdateContentType(ctx, db.UpdateContentTypeParams{
		Label:           req.Label,
		DefaultPlatform: sql.NullString{String: req.DefaultPlatform, Valid: req.DefaultPlatform != ""},
		MaxVariations:   req.MaxVariations,
		ID:              id,
	})
	if err != nil {
		slog.Error("failed to update content type", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update content type")
	}

	return c.JSON(http.StatusOK, ContentTypeOption{
		ID:              id,
		Label:           req.Label,
		DefaultPlatform: req.DefaultPlatform,
		MaxVariations:   req.MaxVariations,
	})
}

func (h *AdminHandler) HandleDeleteContentType(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.store.Queries.GetContentType(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "Content type not found")
		}
		slog.Error("failed to get content type", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete content type")
	}

	if err := h.store.Queries.DeleteContentType(ctx, id); err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return echo.NewHTTPError(http.StatusConflict, "Content type is referenced by existing requests")
		}
		slog.Error("failed to delete content type", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete content type")
	}

	return c.NoContent(http.StatusNoContent)
}

// HandlePurgeCache drops every prompt cache entry, expired or not.
func (h *AdminHandler) HandlePurgeCache(c echo.Context) error {
	admin, _ := auth.GetDBUser(c)

	deleted, err := h.store.Queries.PurgePromptCache(c.Request().Context())
	if err != nil {
		slog.Error("failed to purge prompt cache", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to purge cache")
	}

	if admin != nil {
		slog.Info("prompt cache purged", "deleted", deleted, "admin_id", admin.ID)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"deleted": deleted})
}
