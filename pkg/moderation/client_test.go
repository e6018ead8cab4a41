package moderation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fsociety-ai/doc-verifier/models"
)

func newTestClient(endpoint string) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(models.ModerationOptions{Endpoint: endpoint, TimeoutSeconds: 5}, logger)
}

func TestAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Text != "some extracted text" {
			t.Errorf("request text = %q, want %q", req.Text, "some extracted text")
		}
		json.NewEncoder(w).Encode(models.ModerationResult{
			ToxicityScore:    0.82,
			SentimentLabel:   "negative",
			SentimentScore:   -0.4,
			FlaggedSentences: []string{"a flagged sentence"},
		})
	}))
	defer srv.Close()

	result := newTestClient(srv.URL).Analyze(context.Background(), "some extracted text")

	if result.ToxicityScore != 0.82 {
		t.Errorf("ToxicityScore = %v, want 0.82", result.ToxicityScore)
	}
	if result.SentimentLabel != "negative" {
		t.Errorf("SentimentLabel = %q, want negative", result.SentimentLabel)
	}
	if len(result.FlaggedSentences) != 1 {
		t.Errorf("FlaggedSentences = %v, want one entry", result.FlaggedSentences)
	}
}

func TestAnalyze_EmptyTextSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	result := newTestClient(srv.URL).Analyze(context.Background(), "   ")

	if called {
		t.Error("moderation engine called for empty text")
	}
	assertNeutral(t, result)
}

func assertNeutral(t *testing.T, result models.ModerationResult) {
	t.Helper()

	if result.SentimentLabel != "neutral" || result.ToxicityScore != 0 ||
		result.SentimentScore != 0 || len(result.FlaggedSentences) != 0 {
		t.Errorf("result = %+v, want neutral", result)
	}
}

func TestAnalyze_NoEndpointConfigured(t *testing.T) {
	result := newTestClient("").Analyze(context.Background(), "some text")
	assertNeutral(t, result)
}

func TestAnalyze_EngineErrorDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := newTestClient(srv.URL).Analyze(context.Background(), "some text")
	assertNeutral(t, result)
}

func TestAnalyze_UnreachableEngineDegrades(t *testing.T) {
	result := newTestClient("http://127.0.0.1:1/analyze").Analyze(context.Background(), "some text")
	assertNeutral(t, result)
}
