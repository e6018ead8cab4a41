// Package fetcher retrieves reference content over HTTP with bounded
// timeouts and fan-out/fan-in concurrency. Failures are data: every fetch
// yields a FetchResult, and a failed URL never disturbs its siblings.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fsociety-ai/doc-verifier/models"
	"github.com/fsociety-ai/doc-verifier/pkg/extractors"
)

// Response bodies larger than this are truncated; reference pages do not
// need more for sentence-level matching.
const maxBodyBytes = 10 << 20

// FetchResult is the outcome of one fetch. Non-2xx responses are completed
// operations carrying Success=false and the status code, not errors.
type FetchResult struct {
	URL         string            `json:"url"`
	Success     bool              `json:"success"`
	StatusCode  int               `json:"status_code,omitempty"`
	ContentType string            `json:"content_type,omitempty"`
	Body        string            `json:"body,omitempty"`
	Note        string            `json:"note,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	Error       string            `json:"error,omitempty"`
}

// Fetcher owns the single pooled HTTP client of the process. The client is
// created lazily on first use and released with Close; it is safe for
// concurrent use by any number of in-flight fetches.
type Fetcher struct {
	timeout   time.Duration
	workers   int
	userAgent string
	logger    *slog.Logger
	extract   *extractors.Registry

	once   sync.Once
	client *http.Client
}

func New(opts models.FetchOptions, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	timeout := opts.Timeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		timeout:   timeout,
		workers:   workers,
		userAgent: opts.UserAgent,
		logger:    logger,
		extract:   extractors.NewRegistry(logger),
	}
}

func (f *Fetcher) httpClient() *http.Client {
	f.once.Do(func() {
		f.client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        32,
				MaxIdleConnsPerHost: 8,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	})
	return f.client
}

// Close releases the pooled connections. The fetcher stays usable; a later
// fetch simply re-dials.
func (f *Fetcher) Close() {
	f.httpClient().CloseIdleConnections()
}

// FetchOne retrieves a single URL under the configured timeout. HTML bodies
// come back as raw text for downstream segmentation; PDF bodies are piped
// through the same PDF text extractor the ingestion path uses; other content
// types return metadata only with a note.
func (f *Fetcher) FetchOne(ctx context.Context, rawURL string) FetchResult {
	result := FetchResult{URL: rawURL, Timestamp: time.Now().UTC()}

	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml,application/pdf")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient().Do(req)
	if err != nil {
		result.Error = err.Error()
		f.logger.Warn("fetch failed", "url", rawURL, "error", err)
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.ContentType = resp.Header.Get("Content-Type")
	result.Headers = flattenHeaders(resp.Header)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Error = fmt.Sprintf("failed to fetch URL: HTTP %d", resp.StatusCode)
		return result
	}
	result.Success = true

	switch {
	case strings.Contains(result.ContentType, "text/html"):
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			result.Success = false
			result.Error = fmt.Sprintf("failed to read response body: %s", err)
			return result
		}
		result.Body = string(body)
	case strings.Contains(result.ContentType, "application/pdf"):
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			result.Success = false
			result.Error = fmt.Sprintf("failed to read response body: %s", err)
			return result
		}
		result.Body = f.extract.ForKind(models.KindPDF).Extract(rawURL, result.ContentType, body).Text
	default:
		result.Note = "Content type not supported for detailed extraction"
	}
	return result
}

// FetchMany retrieves all URLs concurrently with a bounded worker limit.
// Result index i always corresponds to urls[i]; a failed or timed-out URL
// produces a failure result in its slot without delaying siblings.
func (f *Fetcher) FetchMany(ctx context.Context, urls []string) []FetchResult {
	results := make([]FetchResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i, u := range urls {
		g.Go(func() error {
			results[i] = f.FetchOne(gctx, u)
			return nil
		})
	}
	_ = g.Wait() // per-URL failures live in their result slots
	return results
}

func flattenHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for key := range h {
		headers[key] = h.Get(key)
	}
	return headers
}
