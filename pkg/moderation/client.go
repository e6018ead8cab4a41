// Package moderation is the client boundary to the external text moderation
// engine. The engine is a black box consumed as analyze(text); this package
// only shapes the call and degrades failures to the neutral result.
package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fsociety-ai/doc-verifier/models"
)

type Client struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	logger   *slog.Logger
}

func NewClient(opts models.ModerationOptions, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.Timeout()
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		endpoint: opts.Endpoint,
		timeout:  timeout,
		client:   &http.Client{},
		logger:   logger,
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// Analyze submits text to the moderation engine. Empty input returns the
// neutral result without a network call. Transport or engine failures also
// degrade to the neutral result with a warning; moderation is never fatal
// to a verification request.
func (c *Client) Analyze(ctx context.Context, text string) models.ModerationResult {
	if strings.TrimSpace(text) == "" || c.endpoint == "" {
		return Neutral()
	}

	payload, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		c.logger.Warn("failed to encode moderation request", "error", err)
		return Neutral()
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		c.logger.Warn("failed to build moderation request", "error", err)
		return Neutral()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("moderation engine unreachable", "error", err)
		return Neutral()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("moderation engine returned error", "status", resp.StatusCode)
		return Neutral()
	}

	var result models.ModerationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn("failed to decode moderation response", "error", err)
		return Neutral()
	}
	return result
}

// Neutral is the zero-signal moderation result used for empty input and
// degraded calls.
func Neutral() models.ModerationResult {
	return models.ModerationResult{SentimentLabel: "neutral"}
}
