// Package generator orchestrates one content generation: quota check,
// lookup resolution, prompt rendering, cache consultation, the remote
// model call, and persistence of results and usage.
package generator

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sethvargo/go-retry"

	"github.com/tulisaja/tulisaja/internal/modelapi"
	"github.com/tulisaja/tulisaja/internal/prompt"
	"github.com/tulisaja/tulisaja/storage"
	"github.com/tulisaja/tulisaja/storage/db"
)

// Request lifecycle states stored on content_requests.status.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Default quotas; per-user overrides live on the users row.
const (
	DefaultDailyLimit   = 20
	DefaultMonthlyLimit = 200
)

const (
	cacheTTL  = 24 * time.Hour
	dayLayout = "2006-01-02"

	retryBase        = 500 * time.Millisecond
	retryCap         = 8 * time.Second
	maxRetries       = 2 // attempts = 1 + maxRetries
	maxRetryAfterOne = 8 * time.Second
)

var (
	ErrDailyLimitExceeded   = errors.New("daily generation limit reached")
	ErrMonthlyLimitExceeded = errors.New("monthly generation limit reached")
	ErrUnknownModel         = errors.New("unknown model")
	ErrUnknownContentType   = errors.New("unknown content type")
	ErrUnknownCategory      = errors.New("unknown product category")
)

// Client is the remote completion call the service depends on.
// *modelapi.Client satisfies it.
type Client interface {
	Generate(ctx context.Context, modelID, prompt string, maxTokens int) (*modelapi.Result, error)
}

type Service struct {
	storage *storage.Storage
	client  Client
}

func New(store *storage.Storage, client Client) *Service {
	return &Service{
		storage: store,
		client:  client,
	}
}

// Input carries the user-submitted attributes for one generation.
type Input struct {
	ProductName    string
	CategoryID     string
	Price          string
	Features       []string
	TargetAudience string
	Tone           string
	ContentTypeID  string
	Platform       string
	Length         string
	Variations     int
	ModelID        string
}

// Output is the persisted result of one generation.
type Output struct {
	Request  db.ContentRequest
	Contents []db.GeneratedContent
}

// UsageSummary reports a user's consumption against their quotas.
type UsageSummary struct {
	TodayCount       int64   `json:"today_count"`
	DailyLimit       int64   `json:"daily_limit"`
	DailyRemaining   int64   `json:"daily_remaining"`
	MonthCount       int64   `json:"month_count"`
	MonthlyLimit     int64   `json:"monthly_limit"`
	MonthlyRemaining int64   `json:"monthly_remaining"`
	MonthTokens      int64   `json:"month_tokens"`
	MonthCostUsd     float64 `json:"month_cost_usd"`
}

// Generate runs the full pipeline for one content request. The request
// row is created before rendering so failed attempts stay auditable; a
// failure after that point marks the row failed and creates no content.
func (s *Service) Generate(ctx context.Context, user *db.User, input Input) (*Output, error) {
	modelID := input.ModelID
	if modelID == "" {
		modelID = modelapi.DefaultModelID
	}
	model, ok := modelapi.Lookup(modelID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, modelID)
	}

	if err := s.checkQuota(ctx, user); err != nil {
		return nil, err
	}

	contentType, err := s.storage.Queries.GetContentType(ctx, input.ContentTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, input.ContentTypeID)
		}
		return nil, fmt.Errorf("load content type: %w", err)
	}
	category, err := s.storage.Queries.GetProductCategory(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, input.CategoryID)
		}
		return nil, fmt.Errorf("load product category: %w", err)
	}

	platform := strings.TrimSpace(input.Platform)
	if platform == "" && contentType.DefaultPlatform.Valid {
		platform = contentType.DefaultPlatform.String
	}

	variations := input.Variations
	if variations < 1 {
		variations = 1
	}
	if variations > int(contentType.MaxVariations) {
		variations = int(contentType.MaxVariations)
	}

	promptReq := prompt.Request{
		ProductName:    strings.TrimSpace(input.ProductName),
		Category:       category.Label,
		Price:          strings.TrimSpace(input.Price),
		Features:       cleanFeatures(input.Features),
		TargetAudience: strings.TrimSpace(input.TargetAudience),
		Tone:           strings.TrimSpace(input.Tone),
		ContentType:    prompt.ContentType(contentType.ID),
		Platform:       platform,
		Length:         strings.TrimSpace(input.Length),
		Variations:     variations,
	}

	request, err := s.storage.Queries.CreateContentRequest(ctx, db.CreateContentRequestParams{
		ID:             ulid.Make().String(),
		UserID:         user.ID,
		ProductName:    promptReq.ProductName,
		CategoryID:     category.ID,
		Price:          nullString(promptReq.Price),
		Features:       nullString(strings.Join(promptReq.Features, "\n")),
		TargetAudience: nullString(promptReq.TargetAudience),
		Tone:           promptReq.Tone,
		ContentTypeID:  contentType.ID,
		Platform:       nullString(platform),
		Length:         promptReq.Length,
		Variations:     int64(variations),
	})
	if err != nil {
		return nil, fmt.Errorf("create content request: %w", err)
	}

	promptText, err := prompt.Render(promptReq)
	if err != nil {
		s.markFailed(ctx, request.ID, model.ID, err)
		return nil, err
	}

	if err := s.storage.Queries.UpdateContentRequestStatus(ctx, db.UpdateContentRequestStatusParams{
		Status:  StatusProcessing,
		ModelID: nullString(model.ID),
		ID:      request.ID,
	}); err != nil {
		return nil, fmt.Errorf("update request status: %w", err)
	}

	maxTokens := prompt.MaxTokens(promptReq.ContentType, promptReq.Length, platform, variations)

	var result *modelapi.Result
	key := cacheKey(model.ID, promptText)
	cached, err := s.storage.Queries.GetPromptCache(ctx, db.GetPromptCacheParams{
		CacheKey:  key,
		ExpiresAt: time.Now().UTC(),
	})
	wasCached := err == nil
	if wasCached {
		result = &modelapi.Result{
			Text:             cached.RawText,
			PromptTokens:     int(cached.PromptTokens),
			CompletionTokens: int(cached.CompletionTokens),
		}
	} else {
		result, err = s.callModel(ctx, model.ID, promptText, maxTokens)
		if err != nil {
			s.markFailed(ctx, request.ID, model.ID, err)
			return nil, err
		}
	}

	// Cached hits cost nothing new; a fresh call's tokens and cost are
	// attributed to the first variation row so sums stay accurate.
	cost := 0.0
	if !wasCached {
		cost = modelapi.EstimateCost(model.ID, result.PromptTokens, result.CompletionTokens)
	}

	texts := parseVariations(result.Text, variations)
	contents := make([]db.GeneratedContent, 0, len(texts))
	for i, text := range texts {
		params := db.CreateGeneratedContentParams{
			ID:             uuid.New().String(),
			UserID:         user.ID,
			RequestID:      request.ID,
			VariationIndex: int64(i),
			PromptText:     promptText,
			RawText:        text,
			ModelID:        model.ID,
			WasCached:      wasCached,
			ResponseTimeMs: result.ResponseTime.Milliseconds(),
		}
		if i == 0 {
			params.PromptTokens = int64(result.PromptTokens)
			params.CompletionTokens = int64(result.CompletionTokens)
			params.EstimatedCostUsd = cost
		}
		content, err := s.storage.Queries.CreateGeneratedContent(ctx, params)
		if err != nil {
			s.markFailed(ctx, request.ID, model.ID, err)
			return nil, fmt.Errorf("persist generated content: %w", err)
		}
		contents = append(contents, content)
	}

	if err := s.storage.Queries.UpdateContentRequestStatus(ctx, db.UpdateContentRequestStatusParams{
		Status:  StatusCompleted,
		ModelID: nullString(model.ID),
		ID:      request.ID,
	}); err != nil {
		return nil, fmt.Errorf("update request status: %w", err)
	}

	s.recordUsage(ctx, user.ID, result, wasCached, cost)

	if !wasCached {
		if err := s.storage.Queries.UpsertPromptCache(ctx, db.UpsertPromptCacheParams{
			ID:               ulid.Make().String(),
			CacheKey:         key,
			ModelID:          model.ID,
			RawText:          result.Text,
			PromptTokens:     int64(result.PromptTokens),
			CompletionTokens: int64(result.CompletionTokens),
			ExpiresAt:        time.Now().UTC().Add(cacheTTL),
		}); err != nil {
			slog.Error("failed to store prompt cache entry", "error", err, "request_id", request.ID)
		}
	}

	request, err = s.storage.Queries.GetContentRequest(ctx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("reload content request: %w", err)
	}

	slog.Info("content generated",
		"request_id", request.ID,
		"user_id", user.ID,
		"content_type", contentType.ID,
		"model", model.ID,
		"variations", len(contents),
		"cached", wasCached,
	)

	return &Output{Request: request, Contents: contents}, nil
}

// Usage summarizes today's and this month's consumption for a user.
func (s *Service) Usage(ctx context.Context, user *db.User) (*UsageSummary, error) {
	now := time.Now()
	today := now.Format(dayLayout)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dayLayout)

	dailyLimit := int64(DefaultDailyLimit)
	if user.DailyLimitOverride.Valid {
		dailyLimit = user.DailyLimitOverride.Int64
	}
	monthlyLimit := int64(DefaultMonthlyLimit)
	if user.MonthlyLimitOverride.Valid {
		monthlyLimit = user.MonthlyLimitOverride.Int64
	}

	var todayCount int64
	stat, err := s.storage.Queries.GetUsageForDay(ctx, db.GetUsageForDayParams{UserID: user.ID, Day: today})
	switch {
	case err == nil:
		todayCount = stat.GenerationCount
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, fmt.Errorf("load daily usage: %w", err)
	}

	monthly, err := s.storage.Queries.SumUsageForRange(ctx, db.SumUsageForRangeParams{
		UserID: user.ID,
		Day:    monthStart,
		Day_2:  today,
	})
	if err != nil {
		return nil, fmt.Errorf("load monthly usage: %w", err)
	}

	return &UsageSummary{
		TodayCount:       todayCount,
		DailyLimit:       dailyLimit,
		DailyRemaining:   remaining(dailyLimit, todayCount),
		MonthCount:       monthly.GenerationCount,
		MonthlyLimit:     monthlyLimit,
		MonthlyRemaining: remaining(monthlyLimit, monthly.GenerationCount),
		MonthTokens:      monthly.TokensUsed,
		MonthCostUsd:     monthly.EstimatedCostUsd,
	}, nil
}

func (s *Service) checkQuota(ctx context.Context, user *db.User) error {
	usage, err := s.Usage(ctx, user)
	if err != nil {
		return err
	}
	if usage.TodayCount >= usage.DailyLimit {
		return fmt.Errorf("%w (%d per hari)", ErrDailyLimitExceeded, usage.DailyLimit)
	}
	if usage.MonthCount >= usage.MonthlyLimit {
		return fmt.Errorf("%w (%d per bulan)", ErrMonthlyLimitExceeded, usage.MonthlyLimit)
	}
	return nil
}

// callModel retries only rate-limited calls. The remote Retry-After is a
// floor waited out before the exponential schedule resumes.
func (s *Service) callModel(ctx context.Context, modelID, promptText string, maxTokens int) (*modelapi.Result, error) {
	backoff := retry.NewExponential(retryBase)
	backoff = retry.WithCappedDuration(retryCap, backoff)
	backoff = retry.WithMaxRetries(maxRetries, backoff)

	var result *modelapi.Result
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var callErr error
		result, callErr = s.client.Generate(ctx, modelID, promptText, maxTokens)
		if callErr == nil {
			return nil
		}

		var rateErr *modelapi.RateLimitError
		if !errors.As(callErr, &rateErr) {
			return callErr
		}

		slog.Warn("model API rate limited, backing off", "model", modelID, "retry_after", rateErr.RetryAfter)
		if wait := rateErr.RetryAfter; wait > 0 {
			if wait > maxRetryAfterOne {
				wait = maxRetryAfterOne
			}
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return retry.RetryableError(callErr)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) recordUsage(ctx context.Context, userID string, result *modelapi.Result, wasCached bool, cost float64) {
	tokens := int64(0)
	if !wasCached {
		tokens = int64(result.PromptTokens + result.CompletionTokens)
	}
	err := s.storage.Queries.UpsertUsageStat(ctx, db.UpsertUsageStatParams{
		ID:               ulid.Make().String(),
		UserID:           userID,
		Day:              time.Now().Format(dayLayout),
		GenerationCount:  1,
		TokensUsed:       tokens,
		EstimatedCostUsd: cost,
	})
	if err != nil {
		slog.Error("failed to record usage", "error", err, "user_id", userID)
	}
}

// markFailed is best-effort bookkeeping after a pipeline failure.
func (s *Service) markFailed(ctx context.Context, requestID, modelID string, cause error) {
	err := s.storage.Queries.UpdateContentRequestStatus(context.WithoutCancel(ctx), db.UpdateContentRequestStatusParams{
		Status:       StatusFailed,
		ErrorMessage: sql.NullString{String: cause.Error(), Valid: true},
		ModelID:      nullString(modelID),
		ID:           requestID,
	})
	if err != nil {
		slog.Error("failed to mark request failed", "error", err, "request_id", requestID)
	}
}

func cacheKey(modelID, promptText string) string {
	h := sha256.Sum256([]byte(modelID + "\n" + promptText))
	return hex.EncodeToString(h[:])
}

func cleanFeatures(features []string) []string {
	var cleaned []string
	for _, f := range features {
		if f = strings.TrimSpace(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}
	return cleaned
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func remaining(limit, used int64) int64 {
	if used >= limit {
		return 0
	}
	return limit - used
}
