package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tulisaja/tulisaja/internal/analyzer"
	"github.com/tulisaja/tulisaja/internal/auth"
	"github.com/tulisaja/tulisaja/storage"
	"github.com/tulisaja/tulisaja/storage/db"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50
)

// ContentsHandler serves the owner-scoped generated-content history
type ContentsHandler struct {
	store *storage.Storage
}

func NewContentsHandler(store *storage.Storage) *ContentsHandler {
	return &ContentsHandler{store: store}
}

type ContentResponse struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"request_id"`
	VariationIndex int64     `json:"variation_index"`
	ProductName    string    `json:"product_name"`
	ContentType    string    `json:"content_type"`
	Platform       string    `json:"platform,omitempty"`
	Tone           string    `json:"tone"`
	Length         string    `json:"length"`
	RawText        string    `json:"raw_text"`
	EditedText     *string   `json:"edited_text,omitempty"`
	DisplayText    string    `json:"display_text"`
	IsFavorite     bool      `json:"is_favorite"`
	QualityRating  *int64    `json:"quality_rating,omitempty"`
	CopyCount      int64     `json:"copy_count"`
	Model          string    `json:"model"`
	WasCached      bool      `json:"was_cached"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ContentDetailResponse struct {
	ContentResponse
	PromptText string          `json:"prompt_text"`
	Stats      *analyzer.Stats `json:"stats"`
}

type ContentListResponse struct {
	Contents   []ContentResponse `json:"contents"`
	Page       int64             `json:"page"`
	PerPage    int64             `json:"per_page"`
	Total      int64             `json:"total"`
	TotalPages int64             `json:"total_pages"`
}

type UpdateContentRequest struct {
	EditedText    *string `json:"edited_text"`
	QualityRating *int64  `json:"quality_rating"`
}

func (h *ContentsHandler) HandleListContents(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage := queryInt(c, "per_page", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	filter := contentFilter(c, user.ID)
	filter.PageLimit = perPage
	filter.PageOffset = (page - 1) * perPage

	rows, err := h.store.Queries.ListGeneratedContents(c.Request().Context(), filter)
	if err != nil {
		slog.Error("failed to list contents", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list contents")
	}

	total, err := h.store.Queries.CountGeneratedContents(c.Request().Context(), db.CountGeneratedContentsParams{
		UserID:        filter.UserID,
		ContentType:   filter.ContentType,
		Platform:      filter.Platform,
		FavoritesOnly: filter.FavoritesOnly,
		Search:        filter.Search,
	})
	if err != nil {
		slog.Error("failed to count contents", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list contents")
	}

	contents := make([]ContentResponse, len(rows))
	for i, row := range rows {
		contents[i] = listRowToResponse(row)
	}

	totalPages := total / perPage
	if total%perPage > 0 {
		totalPages++
	}

	return c.JSON(http.StatusOK, ContentListResponse{
		Contents:   contents,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	})
}

func (h *ContentsHandler) HandleGetContent(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	row, err := h.store.Queries.GetGeneratedContentWithRequest(c.Request().Context(), db.GetGeneratedContentWithRequestParams{
		ID:     c.Param("id"),
		UserID: user.ID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "Content not found")
		}
		slog.Error("failed to get content", "error", err, "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get content")
	}

	resp := detailRowToResponse(row)
	stats := analyzer.Analyze(resp.DisplayText)

	return c.JSON(http.StatusOK, ContentDetailResponse{
		ContentResponse: resp,
		PromptText:      row.PromptText,
		Stats:           &stats,
	})
}

// HandleUpdateContent sets or clears the edited text and sets the quality
// rating. The model's raw text is never touched.
func (h *ContentsHandler) HandleUpdateContent(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req UpdateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.EditedText == nil && req.QualityRating == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Nothing to update")
	}
	if req.QualityRating != nil && *req.QualityRating != 0 && (*req.QualityRating < 1 || *req.QualityRating > 5) {
		return echo.NewHTTPError(http.StatusBadRequest, "Quality rating must be between 1 and 5")
	}

	id := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.store.Queries.GetGeneratedContent(ctx, db.GetGeneratedContentParams{ID: id, UserID: user.ID}); err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "Content not found")
		}
		slog.Error("failed to get content for update", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update content")
	}

	if req.EditedText != nil {
		edited := strings.TrimSpace(*req.EditedText)
		_, err := h.store.Queries.UpdateGeneratedContentEdit(ctx, db.UpdateGeneratedContentEditParams{
			EditedText: sql.NullString{String: edited, Valid: edited != ""},
			ID:         id,
			UserID:     user.ID,
		})
		if err != nil {
			slog.Error("failed to update edited text", "error", err, "id", id)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update content")
		}
	}

	if req.QualityRating != nil {
		rating := *req.QualityRating
		_, err := h.store.Queries.UpdateGeneratedContentRating(ctx, db.UpdateGeneratedContentRatingParams{
			QualityRating: sql.NullInt64{Int64: rating, Valid: rating != 0},
			ID:            id,
			UserID:        user.ID,
		})
		if err != nil {
			slog.Error("failed to update rating", "error", err, "id", id)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update content")
		}
	}

	row, err := h.store.Queries.GetGeneratedContentWithRequest(ctx, db.GetGeneratedContentWithRequestParams{ID: id, UserID: user.ID})
	if err != nil {
		slog.Error("failed to reload content", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update content")
	}

	return c.JSON(http.StatusOK, detailRowToResponse(row))
}

func (h *ContentsHandler) HandleToggleFavorite(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	content, err := h.store.Queries.ToggleGeneratedContentFavorite(c.Request().Context(), db.ToggleGeneratedContentFavoriteParams{
		ID:     c.Param("id"),
		UserID: user.ID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "Content not found")
		}
		slog.Error("failed to toggle favorite", "error", err, "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to toggle favorite")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":          content.ID,
		"is_favorite": content.IsFavorite,
	})
}

func (h *ContentsHandler) HandleMarkCopied(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	id := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.store.Queries.GetGeneratedContent(ctx, db.GetGeneratedContentParams{ID: id, UserID: user.ID}); err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "Content not found")
		}
		slog.Error("failed to get content", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record copy")
	}

	if err := h.store.Queries.IncrementGeneratedContentCopyCount(ctx, db.IncrementGeneratedContentCopyCountParams{ID: id, UserID: user.ID}); err != nil {
		slog.Error("failed to increment copy count", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record copy")
	}

	content, err := h.store.Queries.GetGeneratedContent(ctx, db.GetGeneratedContentParams{ID: id, UserID: user.ID})
	if err != nil {
		slog.Error("failed to reload content", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record copy")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":         content.ID,
		"copy_count": content.CopyCount,
	})
}

func (h *ContentsHandler) HandleDeleteContent(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	deleted, err := h.store.Queries.DeleteGeneratedContent(c.Request().Context(), db.DeleteGeneratedContentParams{
		ID:     c.Param("id"),
		UserID: user.ID,
	})
	if err != nil {
		slog.Error("failed to delete content", "error", err, "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete content")
	}
	if deleted == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Content not found")
	}

	return c.NoContent(http.StatusNoContent)
}

// contentFilter reads the shared list/export filter query parameters.
func contentFilter(c echo.Context, userID string) db.ListGeneratedContentsParams {
	return db.ListGeneratedContentsParams{
		UserID:        userID,
		ContentType:   strings.TrimSpace(c.QueryParam("content_type")),
		Platform:      strings.TrimSpace(c.QueryParam("platform")),
		FavoritesOnly: c.QueryParam("favorites") == "true",
		Search:        strings.TrimSpace(c.QueryParam("search")),
	}
}

func queryInt(c echo.Context, name string, fallback int64) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func displayText(raw string, edited sql.NullString) string {
	if edited.Valid && edited.String != "" {
		return edited.String
	}
	return raw
}

func listRowToResponse(row db.ListGeneratedContentsRow) ContentResponse {
	resp := ContentResponse{
		ID:             row.ID,
		RequestID:      row.RequestID,
		VariationIndex: row.VariationIndex,
		ProductName:    row.ProductName,
		ContentType:    row.ContentTypeID,
		Tone:           row.Tone,
		Length:         row.Length,
		RawText:        row.RawText,
		DisplayText:    displayText(row.RawText, row.EditedText),
		IsFavorite:     row.IsFavorite,
		CopyCount:      row.CopyCount,
		Model:          row.ModelID,
		WasCached:      row.WasCached,
		ResponseTimeMs: row.ResponseTimeMs,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.Platform.Valid {
		resp.Platform = row.Platform.String
	}
	if row.EditedText.Valid {
		resp.EditedText = &row.EditedText.String
	}
	if row.QualityRating.Valid {
		resp.QualityRating = &row.QualityRating.Int64
	}
	return resp
}

func detailRowToResponse(row db.GetGeneratedContentWithRequestRow) ContentResponse {
	resp := ContentResponse{
		ID:             row.ID,
		RequestID:      row.RequestID,
		VariationIndex: row.VariationIndex,
		ProductName:    row.ProductName,
		ContentType:    row.ContentTypeID,
		Tone:           row.Tone,
		Length:         row.Length,
		RawText:        row.RawText,
		DisplayText:    displayText(row.RawText, row.EditedText),
		IsFavorite:     row.IsFavorite,
		CopyCount:      row.CopyCount,
		Model:          row.ModelID,
		WasCached:      row.WasCached,
		ResponseTimeMs: row.ResponseTimeMs,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.Platform.Valid {
		resp.Platform = row.Platform.String
	}
	if row.EditedText.Valid {
		resp.EditedText = &row.EditedText.String
	}
	if row.QualityRating.Valid {
		resp.QualityRating = &row.QualityRating.Int64
	}
	return resp
}
