// Package modelapi is a thin HTTP client for the hosted text generation
// API. It performs exactly one call per Generate invocation and maps
// failures to typed errors; retry policy belongs to the caller.
package modelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

type GenerateRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GenerateResponse struct {
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Result is one successful completion.
type Result struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	ResponseTime     time.Duration
}

func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Generate sends one completion request and returns the model's text with
// token usage. It never retries on its own.
func (c *Client) Generate(ctx context.Context, modelID, prompt string, maxTokens int) (*Result, error) {
	reqBody := GenerateRequest{
		Model:     modelID,
		MaxTokens: maxTokens,
		Messages:  []Message{{Role: "user", Content: prompt}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/v1/messages", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, &TimeoutError{Err: err}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{Err: err}
		}
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &AuthenticationError{Status: resp.StatusCode}
	case http.StatusTooManyRequests:
		return nil, &RateLimitError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		return nil, &InvalidResponseError{Status: resp.StatusCode, Detail: truncateBody(body)}
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, &InvalidResponseError{Status: resp.StatusCode, Detail: "malformed JSON body"}
	}

	text := strings.TrimSpace(genResp.Content)
	if text == "" {
		return nil, &InvalidResponseError{Status: resp.StatusCode, Detail: "empty content"}
	}

	elapsed := time.Since(start)
	slog.Debug("model API call completed",
		"model", modelID,
		"prompt_tokens", genResp.Usage.InputTokens,
		"completion_tokens", genResp.Usage.OutputTokens,
		"duration_ms", elapsed.Milliseconds(),
	)

	return &Result{
		Text:             text,
		PromptTokens:     genResp.Usage.InputTokens,
		CompletionTokens: genResp.Usage.OutputTokens,
		ResponseTime:     elapsed,
	}, nil
}

// parseRetryAfter accepts the delta-seconds and HTTP-date forms.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

func truncateBody(body []byte) string {
	const maxDetail = 200
	s := strings.TrimSpace(string(body))
	if len(s) > maxDetail {
		return s[:maxDetail] + "..."
	}
	return s
}
