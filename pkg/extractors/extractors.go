// Package extractors pulls metadata and plain text out of uploaded documents.
// One extractor exists per document kind. Extractors never fail: malformed
// input degrades to base metadata and empty text with a logged warning, so a
// bad file cannot abort the pipeline.
package extractors

import (
	"log/slog"
	"time"

	"github.com/fsociety-ai/doc-verifier/models"
)

// Extractor is the capability every format handler implements.
type Extractor interface {
	Extract(filename, fileType string, data []byte) models.ExtractionResult
}

// Registry dispatches document kinds to their extractor.
type Registry struct {
	logger *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// ForKind returns the extractor for kind. Unknown kinds get the no-op
// extractor, which yields base metadata and empty text.
func (r *Registry) ForKind(kind models.DocumentKind) Extractor {
	switch kind {
	case models.KindPDF:
		return &pdfExtractor{logger: r.logger}
	case models.KindOfficeDoc:
		return &officeExtractor{logger: r.logger}
	case models.KindPlainText:
		return &textExtractor{logger: r.logger}
	default:
		return &noopExtractor{logger: r.logger}
	}
}

// baseMetadata builds the fields present in every ExtractionResult,
// regardless of format or extraction outcome.
func baseMetadata(filename, fileType string, size int) map[string]any {
	return map[string]any{
		models.MetaFilename:       filename,
		models.MetaFileSize:       size,
		models.MetaFileType:       fileType,
		models.MetaExtractionTime: time.Now().UTC().Format(time.RFC3339),
	}
}

func enrichLanguage(md map[string]any, text string) {
	if code, ok := DetectLanguage(text); ok {
		md["language"] = code
	}
}
