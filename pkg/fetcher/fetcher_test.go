package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fsociety-ai/doc-verifier/models"
)

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := New(models.FetchOptions{TimeoutSeconds: 5, Workers: 3, UserAgent: "doc-verifier-test"}, logger)
	t.Cleanup(f.Close)
	return f
}

func TestFetchOne_HTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "doc-verifier-test" {
			t.Errorf("User-Agent = %q, want doc-verifier-test", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><body><p>hello</p></body></html>")
	}))
	defer srv.Close()

	f := newTestFetcher(t)
	result := f.FetchOne(context.Background(), srv.URL)

	if !result.Success {
		t.Fatalf("Success = false, error = %s", result.Error)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", result.StatusCode)
	}
	if !strings.Contains(result.Body, "<p>hello</p>") {
		t.Errorf("Body = %q, want raw HTML", result.Body)
	}
}

func TestFetchOne_NotFoundIsFailureData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := newTestFetcher(t)
	result := f.FetchOne(context.Background(), srv.URL)

	if result.Success {
		t.Error("Success = true, want false for HTTP 404")
	}
	if result.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", result.StatusCode)
	}
	if result.Error != "failed to fetch URL: HTTP 404" {
		t.Errorf("Error = %q, want %q", result.Error, "failed to fetch URL: HTTP 404")
	}
}

func TestFetchOne_UnsupportedContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))
	defer srv.Close()

	f := newTestFetcher(t)
	result := f.FetchOne(context.Background(), srv.URL)

	if !result.Success {
		t.Fatalf("Success = false, error = %s", result.Error)
	}
	if result.Body != "" {
		t.Errorf("Body = %q, want empty for unsupported content type", result.Body)
	}
	if result.Note == "" {
		t.Error("Note is empty, want an unsupported-content-type note")
	}
}

func TestFetchOne_ConnectionRefused(t *testing.T) {
	f := newTestFetcher(t)
	result := f.FetchOne(context.Background(), "http://127.0.0.1:1/unreachable")

	if result.Success {
		t.Error("Success = true, want false")
	}
	if result.Error == "" {
		t.Error("Error is empty, want the transport error recorded")
	}
}

func TestFetchMany_PreservesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/fail") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, "<html><body>%s</body></html>", r.URL.Path)
	}))
	defer srv.Close()

	urls := []string{
		srv.URL + "/a",
		srv.URL + "/fail",
		srv.URL + "/b",
		srv.URL + "/c",
	}

	f := newTestFetcher(t)
	results := f.FetchMany(context.Background(), urls)

	if len(results) != len(urls) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(urls))
	}
	for i, r := range results {
		if r.URL != urls[i] {
			t.Errorf("results[%d].URL = %q, want %q", i, r.URL, urls[i])
		}
	}
	if results[1].Success {
		t.Error("results[1].Success = true, want the failing URL marked failed")
	}
	for _, i := range []int{0, 2, 3} {
		if !results[i].Success {
			t.Errorf("results[%d].Success = false, error = %s", i, results[i].Error)
		}
	}
}
