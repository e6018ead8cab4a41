// Package matcher estimates how well a document's claims align with the
// configured trusted reference sources. Each key phrase is compared against
// the sentences of every fetched reference page; the best similarity decides
// verified vs unverified. The comparison is deterministic for identical
// inputs and bounded by the fetcher's timeout.
package matcher

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/fsociety-ai/doc-verifier/models"
	"github.com/fsociety-ai/doc-verifier/pkg/caching"
	"github.com/fsociety-ai/doc-verifier/pkg/fetcher"
	"github.com/fsociety-ai/doc-verifier/pkg/webtext"
)

type Matcher struct {
	fetcher    *fetcher.Fetcher
	cache      *caching.Cache // nil disables caching
	sources    []string
	maxPhrases int
	threshold  float64
	logger     *slog.Logger
}

func New(sources []string, opts models.MatchOptions, f *fetcher.Fetcher, cache *caching.Cache, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	maxPhrases := opts.MaxKeyPhrases
	if maxPhrases <= 0 {
		maxPhrases = 20
	}
	threshold := opts.SimilarityThreshold
	if threshold <= 0 {
		threshold = 0.6
	}
	return &Matcher{
		fetcher:    f,
		cache:      cache,
		sources:    sources,
		maxPhrases: maxPhrases,
		threshold:  threshold,
		logger:     logger,
	}
}

type referenceSource struct {
	url       string
	sentences []string
}

// Check classifies each key phrase of text as verified or unverified and
// reports the aggregate match score. A failed or cancelled match stage
// yields the zero-valued result with Error set; it is never fatal.
func (m *Matcher) Check(ctx context.Context, text string) models.TrustedSourceMatchResult {
	result := models.TrustedSourceMatchResult{
		VerifiedPhrases:   []string{},
		UnverifiedPhrases: []string{},
		MatchedSources:    []string{},
	}

	phrases := ExtractKeyPhrases(text, m.maxPhrases)
	if len(phrases) == 0 {
		return result
	}

	references := m.fetchReferences(ctx)
	if err := ctx.Err(); err != nil {
		return models.TrustedSourceMatchResult{
			VerifiedPhrases:   []string{},
			UnverifiedPhrases: []string{},
			MatchedSources:    []string{},
			Error:             err.Error(),
		}
	}

	matched := make(map[string]bool)
	for _, phrase := range phrases {
		verified := false
		for _, ref := range references {
			if bestSimilarity(phrase, ref.sentences) >= m.threshold {
				verified = true
				matched[ref.url] = true
			}
		}
		if verified {
			result.VerifiedPhrases = append(result.VerifiedPhrases, phrase)
		} else {
			result.UnverifiedPhrases = append(result.UnverifiedPhrases, phrase)
		}
	}

	result.OverallMatchScore = float64(len(result.VerifiedPhrases)) / float64(len(phrases))

	// Config order, not match order.
	for _, src := range m.sources {
		if matched[src] {
			result.MatchedSources = append(result.MatchedSources, src)
		}
	}
	return result
}

// fetchReferences retrieves every trusted source concurrently, serving
// distilled text from the cache when fresh. Sources that fail or yield no
// text contribute no sentences; that degrades the score, never the request.
func (m *Matcher) fetchReferences(ctx context.Context) []referenceSource {
	references := make([]referenceSource, len(m.sources))
	var toFetch []string
	var fetchIdx []int

	for i, src := range m.sources {
		references[i] = referenceSource{url: src}
		if m.cache != nil {
			if data, ok := m.cache.Get(src); ok {
				references[i].sentences = webtext.Sentences(string(data))
				continue
			}
		}
		toFetch = append(toFetch, src)
		fetchIdx = append(fetchIdx, i)
	}

	if len(toFetch) == 0 {
		return references
	}

	for j, res := range m.fetcher.FetchMany(ctx, toFetch) {
		i := fetchIdx[j]
		text := m.referenceText(res)
		references[i].sentences = webtext.Sentences(text)
		if m.cache != nil && text != "" {
			if err := m.cache.Set(m.sources[i], []byte(text)); err != nil {
				m.logger.Warn("failed to cache reference text", "url", m.sources[i], "error", err)
			}
		}
	}
	return references
}

func (m *Matcher) referenceText(res fetcher.FetchResult) string {
	if !res.Success || res.Body == "" {
		if res.Error != "" {
			m.logger.Warn("trusted source unavailable", "url", res.URL, "error", res.Error)
		}
		return ""
	}
	if strings.Contains(res.ContentType, "text/html") {
		_, text, err := webtext.FromHTML(res.URL, res.Body)
		if err != nil {
			m.logger.Warn("failed to distill reference page", "url", res.URL, "error", err)
			return ""
		}
		return text
	}
	// PDF bodies arrive as already-extracted text.
	return res.Body
}

// bestSimilarity returns the highest Jaro-Winkler score of phrase against
// any sentence, case-folded.
func bestSimilarity(phrase string, sentences []string) float64 {
	p := strings.ToLower(phrase)
	best := 0.0
	for _, sentence := range sentences {
		score := smetrics.JaroWinkler(p, strings.ToLower(sentence), 0.7, 4)
		if score > best {
			best = score
		}
	}
	return best
}
