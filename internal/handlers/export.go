package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tulisaja/tulisaja/internal/auth"
	"github.com/tulisaja/tulisaja/internal/export"
	"github.com/tulisaja/tulisaja/internal/sharecard"
	"github.com/tulisaja/tulisaja/storage"
	"github.com/tulisaja/tulisaja/storage/db"
)

// bulkExportLimit bounds a bulk export; history exports are unpaginated.
const bulkExportLimit = 10000

// ExportHandler serves content downloads and share cards
type ExportHandler struct {
	store   *storage.Storage
	baseURL string
}

func NewExportHandler(store *storage.Storage, baseURL string) *ExportHandler {
	return &ExportHandler{store: store, baseURL: baseURL}
}

// HandleExportContent downloads a single content as txt, json, or pdf.
func (h *ExportHandler) HandleExportContent(c echo.Context) error {
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
		slog.Error("failed to get content for export", "error", err, "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export content")
	}

	item := detailRowToItem(row)
	format := c.QueryParam("format")
	if format == "" {
		format = "txt"
	}

	var data []byte
	var contentType string
	switch format {
	case "txt":
		data = export.ContentTXT(item)
		contentType = "text/plain; charset=utf-8"
	case "json":
		data, err = export.ContentJSON(item)
		contentType = "application/json"
	case "pdf":
		data, err = export.ContentPDF(item)
		contentType = "application/pdf"
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported format: use txt, json, or pdf")
	}
	if err != nil {
		slog.Error("failed to render export", "error", err, "format", format, "id", item.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export content")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename(item, format)))
	return c.Blob(http.StatusOK, contentType, data)
}

// HandleExportHistory downloads the filtered content history as csv or json.
func (h *ExportHandler) HandleExportHistory(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	filter := contentFilter(c, user.ID)
	filter.PageLimit = bulkExportLimit
	filter.PageOffset = 0

	rows, err := h.store.Queries.ListGeneratedContents(c.Request().Context(), filter)
	if err != nil {
		slog.Error("failed to list contents for export", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export history")
	}

	items := make([]export.Item, len(rows))
	for i, row := range rows {
		items[i] = listRowToItem(row)
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}

	var data []byte
	var contentType string
	switch format {
	case "csv":
		data, err = export.HistoryCSV(items)
		contentType = "text/csv; charset=utf-8"
	case "json":
		data, err = export.HistoryJSON(items)
		contentType = "application/json"
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported format: use csv or json")
	}
	if err != nil {
		slog.Error("failed to render history export", "error", err, "format", format, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export history")
	}

	filename := fmt.Sprintf("tulisaja-riwayat-%s.%s", time.Now().Format("20060102"), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, contentType, data)
}

// HandleShareCard renders a 1080x1080 PNG card for social sharing.
func (h *ExportHandler) HandleShareCard(c echo.Context) error {
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
		slog.Error("failed to get content for share card", "error", err, "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render share card")
	}

	platform := c.QueryParam("platform")
	if platform == "" && row.Platform.Valid {
		platform = row.Platform.String
	}

	png, err := sharecard.Render(sharecard.Card{
		ProductName: row.ProductName,
		Text:        displayText(row.RawText, row.EditedText),
		Platform:    platform,
		ShareURL:    h.baseURL + "/contents/" + row.ID,
	})
	if err != nil {
		slog.Error("failed to render share card", "error", err, "id", row.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render share card")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func detailRowToItem(row db.GetGeneratedContentWithRequestRow) export.Item {
	item := export.Item{
		ID:          row.ID,
		ProductName: row.ProductName,
		ContentType: row.ContentTypeID,
		Tone:        row.Tone,
		Length:      row.Length,
		ModelID:     row.ModelID,
		Text:        displayText(row.RawText, row.EditedText),
		IsFavorite:  row.IsFavorite,
		CreatedAt:   row.CreatedAt,
	}
	if row.Platform.Valid {
		item.Platform = row.Platform.String
	}
	return item
}

func listRowToItem(row db.ListGeneratedContentsRow) export.Item {
	item := export.Item{
		ID:          row.ID,
		ProductName: row.ProductName,
		ContentType: row.ContentTypeID,
		Tone:        row.Tone,
		Length:      row.Length,
		ModelID:     row.ModelID,
		Text:        displayText(row.RawText, row.EditedText),
		IsFavorite:  row.IsFavorite,
		CreatedAt:   row.CreatedAt,
	}
	if row.Platform.Valid {
		item.Platform = row.Platform.String
	}
	return item
}
