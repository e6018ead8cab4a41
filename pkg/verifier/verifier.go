// Package verifier orchestrates the verification pipeline: sniff, extract,
// store, moderate and match concurrently, then score and assemble the
// verdict. It is the only component that knows the stage sequencing; every
// stage is a pure function over its inputs plus declared external calls.
package verifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fsociety-ai/doc-verifier/internal/common"
	"github.com/fsociety-ai/doc-verifier/models"
	"github.com/fsociety-ai/doc-verifier/pkg/caching"
	"github.com/fsociety-ai/doc-verifier/pkg/db"
	"github.com/fsociety-ai/doc-verifier/pkg/extractors"
	"github.com/fsociety-ai/doc-verifier/pkg/fetcher"
	"github.com/fsociety-ai/doc-verifier/pkg/matcher"
	"github.com/fsociety-ai/doc-verifier/pkg/moderation"
	"github.com/fsociety-ai/doc-verifier/pkg/scorer"
	"github.com/fsociety-ai/doc-verifier/pkg/sniffer"
	"github.com/fsociety-ai/doc-verifier/pkg/storage"
)

type Service struct {
	fetcher    *fetcher.Fetcher
	extractors *extractors.Registry
	matcher    *matcher.Matcher
	moderation *moderation.Client
	scorer     *scorer.Scorer
	store      storage.BlobStore
	sink       *db.DB // nil disables persistence
	logger     *slog.Logger

	sinkWrites sync.WaitGroup
}

func New(cfg *models.Config, store storage.BlobStore, sink *db.DB, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	f := fetcher.New(cfg.Fetch, logger)

	var cache *caching.Cache
	if cfg.Fetch.CacheDir != "" {
		c, err := caching.NewCache(cfg.Fetch.CacheDir, cfg.Fetch.CacheTTL())
		if err != nil {
			logger.Warn("reference cache disabled", "error", err)
		} else {
			cache = c
		}
	}

	return &Service{
		fetcher:    f,
		extractors: extractors.NewRegistry(logger),
		matcher:    matcher.New(cfg.TrustedSources, cfg.Match, f, cache, logger),
		moderation: moderation.NewClient(cfg.Moderation, logger),
		scorer:     scorer.New(cfg.Moderation.ToxicityThreshold, cfg.Match.LowMatchThreshold),
		store:      store,
		sink:       sink,
		logger:     logger,
	}
}

// Close waits for in-flight sink writes and releases the pooled HTTP
// connections. Bound to service lifetime, not to individual requests.
func (s *Service) Close() {
	s.sinkWrites.Wait()
	s.fetcher.Close()
}

// Verify runs the full pipeline for one document. The caller always receives
// either a complete verdict or an explicit error; the only fatal paths are
// zero-byte input and a blob-store write failure.
func (s *Service) Verify(ctx context.Context, filename string, raw []byte) (*models.VerificationVerdict, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("document %q is empty or unreadable", filename)
	}

	kind, detectedType := sniffer.Detect(raw)
	doc := models.Document{
		ID:           uuid.NewString(),
		Filename:     filename,
		RawSize:      int64(len(raw)),
		ContentHash:  common.ContentHash(raw),
		DetectedType: detectedType,
		Kind:         kind,
	}

	logger := s.logger.With("document_id", doc.ID, "filename", filename)
	logger.Info("verifying document", "file_type", detectedType, "size", doc.RawSize)

	extraction := s.extractors.ForKind(kind).Extract(filename, detectedType, raw)

	storagePath := fmt.Sprintf("documents/%s/%s", doc.ID, filename)
	if _, err := s.store.Put(ctx, storagePath, raw); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	// Moderation and trusted-source matching are independent once text
	// extraction completes; both degrade internally and never error.
	var modResult models.ModerationResult
	var matchResult models.TrustedSourceMatchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		modResult = s.moderation.Analyze(gctx, extraction.Text)
		return nil
	})
	g.Go(func() error {
		matchResult = s.matcher.Check(gctx, extraction.Text)
		return nil
	})
	_ = g.Wait()

	issues, confidence := s.scorer.Evaluate(extraction.Metadata, modResult, matchResult)

	verdict := &models.VerificationVerdict{
		DocumentID:      doc.ID,
		Filename:        filename,
		FileSize:        doc.RawSize,
		FileType:        detectedType,
		FileHash:        doc.ContentHash,
		UploadTimestamp: time.Now().UTC(),
		IsAuthentic:     len(issues) == 0,
		Confidence:      confidence,
		Category:        scorer.Classify(filename, extraction.Text),
		Issues:          issues,
		Metadata:        extraction.Metadata,
		ContentAnalysis: modResult,
		MatchResult:     matchResult,
		StoragePath:     storagePath,
	}

	s.persistAsync(verdict)

	logger.Info("verdict ready",
		"is_authentic", verdict.IsAuthentic,
		"confidence", verdict.Confidence,
		"category", verdict.Category,
		"issues", len(issues))
	return verdict, nil
}

// ExtractText runs type sniffing and text extraction only, with no verdict.
func (s *Service) ExtractText(filename string, raw []byte) models.ExtractionResult {
	kind, detectedType := sniffer.Detect(raw)
	return s.extractors.ForKind(kind).Extract(filename, detectedType, raw)
}

// CheckAgainstTrustedSources exposes the matcher as a standalone capability,
// usable without a full document.
func (s *Service) CheckAgainstTrustedSources(ctx context.Context, text string) models.TrustedSourceMatchResult {
	return s.matcher.Check(ctx, text)
}

// FetchOne exposes the fetcher for ad hoc reference lookups.
func (s *Service) FetchOne(ctx context.Context, url string) fetcher.FetchResult {
	return s.fetcher.FetchOne(ctx, url)
}

// FetchMany exposes the concurrent fetcher for ad hoc reference lookups.
func (s *Service) FetchMany(ctx context.Context, urls []string) []fetcher.FetchResult {
	return s.fetcher.FetchMany(ctx, urls)
}

// persistAsync appends the verdict to the sink in the background. The write
// has its own retry policy; a sink failure never invalidates the verdict the
// caller already holds.
func (s *Service) persistAsync(v *models.VerificationVerdict) {
	if s.sink == nil {
		return
	}
	s.sinkWrites.Add(1)
	go func() {
		defer s.sinkWrites.Done()
		err := s.sink.InsertVerdict(v)
		if err == nil {
			return
		}
		s.logger.Warn("verdict sink write failed, retrying", "document_id", v.DocumentID, "error", err)
		time.Sleep(time.Second)
		if err := s.sink.InsertVerdict(v); err != nil {
			s.logger.Error("verdict sink write failed", "document_id", v.DocumentID, "error", err)
		}
	}()
}
