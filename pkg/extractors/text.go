package extractors

import (
	"log/slog"
	"strings"

	"github.com/fsociety-ai/doc-verifier/models"
)

// textExtractor decodes plain text as UTF-8 with invalid-sequence
// replacement. It never fails, whatever the encoding.
type textExtractor struct {
	logger *slog.Logger
}

func (e *textExtractor) Extract(filename, fileType string, data []byte) models.ExtractionResult {
	md := baseMetadata(filename, fileType, len(data))
	text := strings.ToValidUTF8(string(data), "�")
	enrichLanguage(md, text)
	return models.ExtractionResult{Text: text, Metadata: md}
}

// noopExtractor handles kinds the pipeline cannot extract. Routing here is
// logged for audit but is not an error.
type noopExtractor struct {
	logger *slog.Logger
}

func (e *noopExtractor) Extract(filename, fileType string, data []byte) models.ExtractionResult {
	e.logger.Info("unsupported file type for text extraction", "filename", filename, "file_type", fileType)
	return models.ExtractionResult{Metadata: baseMetadata(filename, fileType, len(data))}
}
