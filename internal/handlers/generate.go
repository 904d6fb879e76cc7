package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tulisaja/tulisaja/internal/auth"
	"github.com/tulisaja/tulisaja/internal/generator"
	"github.com/tulisaja/tulisaja/internal/modelapi"
	"github.com/tulisaja/tulisaja/internal/prompt"
	"github.com/tulisaja/tulisaja/storage/db"
)

// GenerateHandler runs content generation and reports usage
type GenerateHandler struct {
	generator *generator.Service
}

func NewGenerateHandler(svc *generator.Service) *GenerateHandler {
	return &GenerateHandler{generator: svc}
}

type GenerateRequest struct {
	ProductName    string   `json:"product_name"`
	Category       string   `json:"category"`
	Price          string   `json:"price"`
	Features       []string `json:"features"`
	TargetAudience string   `json:"target_audience"`
	Tone           string   `json:"tone"`
	ContentType    string   `json:"content_type"`
	Platform       string   `json:"platform"`
	Length         string   `json:"length"`
	Variations     int      `json:"variations"`
	Model          string   `json:"model"`
}

type RequestResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Tone        string    `json:"tone"`
	ContentType string    `json:"content_type"`
	Platform    string    `json:"platform,omitempty"`
	Length      string    `json:"length"`
	Variations  int64     `json:"variations"`
	Status      string    `json:"status"`
	Model       string    `json:"model,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type GenerateResponse struct {
	Request  RequestResponse   `json:"request"`
	Contents []ContentResponse `json:"contents"`
}

func (h *GenerateHandler) HandleGenerate(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.generator.Generate(c.Request().Context(), user, generator.Input{
		ProductName:    req.ProductName,
		CategoryID:     req.Category,
		Price:          req.Price,
		Features:       req.Features,
		TargetAudience: req.TargetAudience,
		Tone:           req.Tone,
		ContentTypeID:  req.ContentType,
		Platform:       req.Platform,
		Length:         req.Length,
		Variations:     req.Variations,
		ModelID:        req.Model,
	})
	if err != nil {
		return generateError(c, err)
	}

	contents := make([]ContentResponse, len(out.Contents))
	for i, content := range out.Contents {
		contents[i] = generatedToResponse(content, out.Request)
	}

	return c.JSON(http.StatusOK, GenerateResponse{
		Request:  requestToResponse(out.Request),
		Contents: contents,
	})
}

func (h *GenerateHandler) HandleUsage(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	usage, err := h.generator.Usage(c.Request().Context(), user)
	if err != nil {
		slog.Error("failed to load usage", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load usage")
	}

	return c.JSON(http.StatusOK, usage)
}

// generateError maps pipeline failures onto HTTP statuses. Validation
// problems are the caller's to fix; upstream problems are reported as
// gateway errors without leaking credentials detail.
func generateError(c echo.Context, err error) error {
	var missingField *prompt.MissingFieldError
	if errors.As(err, &missingField) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	switch {
	case errors.Is(err, generator.ErrUnknownModel),
		errors.Is(err, generator.ErrUnknownCategory),
		errors.Is(err, generator.ErrUnknownContentType):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, generator.ErrDailyLimitExceeded),
		errors.Is(err, generator.ErrMonthlyLimitExceeded):
		return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
	}

	var rateErr *modelapi.RateLimitError
	if errors.As(err, &rateErr) {
		if rateErr.RetryAfter > 0 {
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(rateErr.RetryAfter.Seconds())))
		}
		return echo.NewHTTPError(http.StatusTooManyRequests, "Layanan sedang sibuk, coba lagi sebentar lagi")
	}

	var timeoutErr *modelapi.TimeoutError
	if errors.As(err, &timeoutErr) {
		return echo.NewHTTPError(http.StatusGatewayTimeout, "Pembuatan konten melebihi batas waktu, coba lagi")
	}

	var authErr *modelapi.AuthenticationError
	var invalidErr *modelapi.InvalidResponseError
	if errors.As(err, &authErr) || errors.As(err, &invalidErr) {
		slog.Error("model API failure", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "Pembuatan konten gagal, coba lagi")
	}

	slog.Error("generation failed", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Pembuatan konten gagal")
}

func requestToResponse(r db.ContentRequest) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID,
		ProductName: r.ProductName,
		Category:    r.CategoryID,
		Tone:        r.Tone,
		ContentType: r.ContentTypeID,
		Length:      r.Length,
		Variations:  r.Variations,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
	if r.Platform.Valid {
		resp.Platform = r.Platform.String
	}
	if r.ModelID.Valid {
		resp.Model = r.ModelID.String
	}
	return resp
}

// generatedToResponse builds a ContentResponse for a row that was just
// created, pulling the product fields from its request.
func generatedToResponse(gc db.GeneratedContent, r db.ContentRequest) ContentResponse {
	resp := ContentResponse{
		ID:             gc.ID,
		RequestID:      gc.RequestID,
		VariationIndex: gc.VariationIndex,
		ProductName:    r.ProductName,
		ContentType:    r.ContentTypeID,
		Tone:           r.Tone,
		Length:         r.Length,
		RawText:        gc.RawText,
		DisplayText:    displayText(gc.RawText, gc.EditedText),
		IsFavorite:     gc.IsFavorite,
		CopyCount:      gc.CopyCount,
		Model:          gc.ModelID,
		WasCached:      gc.WasCached,
		ResponseTimeMs: gc.ResponseTimeMs,
		CreatedAt:      gc.CreatedAt,
		UpdatedAt:      gc.UpdatedAt,
	}
	if r.Platform.Valid {
		resp.Platform = r.Platform.String
	}
	if gc.EditedText.Valid {
		resp.EditedText = &gc.EditedText.String
	}
	if gc.QualityRating.Valid {
		resp.QualityRating = &gc.QualityRating.Int64
	}
	return resp
}
