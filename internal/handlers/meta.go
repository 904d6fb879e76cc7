package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tulisaja/tulisaja/internal/modelapi"
	"github.com/tulisaja/tulisaja/storage"
)

// MetaHandler serves the lookup data the generation form is built from
type MetaHandler struct {
	store *storage.Storage
}

func NewMetaHandler(store *storage.Storage) *MetaHandler {
	return &MetaHandler{store: store}
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ContentTypeOption struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DefaultPlatform string `json:"default_platform,omitempty"`
	MaxVariations   int64  `json:"max_variations"`
}

type MetaResponse struct {
	Categories   []Option             `json:"categories"`
	ContentTypes []ContentTypeOption  `json:"content_types"`
	Tones        []Option             `json:"tones"`
	Lengths      []Option             `json:"lengths"`
	Platforms    []Option             `json:"platforms"`
	Models       []modelapi.ModelInfo `json:"models"`
}

var toneOptions = []Option{
	{ID: "casual", Label: "Santai"},
	{ID: "professional", Label: "Profesional"},
	{ID: "luxury", Label: "Mewah"},
	{ID: "friendly", Label: "Ramah"},
	{ID: "humorous", Label: "Humoris"},
	{ID: "persuasive", Label: "Persuasif"},
}

var lengthOptions = []Option{
	{ID: "short", Label: "Pendek"},
	{ID: "medium", Label: "Sedang"},
	{ID: "long", Label: "Panjang"},
}

var platformOptions = []Option{
	{ID: "instagram", Label: "Instagram"},
	{ID: "facebook", Label: "Facebook"},
	{ID: "tiktok", Label: "TikTok"},
	{ID: "twitter", Label: "Twitter/X"},
}

func (h *MetaHandler) HandleMeta(c echo.Context) error {
	categories, err := h.store.Queries.ListProductCategories(c.Request().Context())
	if err != nil {
		slog.Error("failed to list product categories", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load metadata")
	}

	contentTypes, err := h.store.Queries.ListContentTypes(c.Request().Context())
	if err != nil {
		slog.Error("failed to list content types", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load metadata")
	}

	resp := MetaResponse{
		Categories:   make([]Option, len(categories)),
		ContentTypes: make([]ContentTypeOption, len(contentTypes)),
		Tones:        toneOptions,
		Lengths:      lengthOptions,
		Platforms:    platformOptions,
		Models:       modelapi.AllModels,
	}
	for i, cat := range categories {
		resp.Categories[i] = Option{ID: cat.ID, Label: cat.Label}
	}
	for i, ct := range contentTypes {
		opt := ContentTypeOption{ID: ct.ID, Label: ct.Label, MaxVariations: ct.MaxVariations}
		if ct.DefaultPlatform.Valid {
			opt.DefaultPlatform = ct.DefaultPlatform.String
		}
		resp.ContentTypes[i] = opt
	}

	return c.JSON(http.StatusOK, resp)
}
