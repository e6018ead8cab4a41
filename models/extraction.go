package models

// Metadata keys guaranteed to be present in every ExtractionResult.
const (
	MetaFilename       = "filename"
	MetaFileSize       = "file_size"
	MetaFileType       = "file_type"
	MetaExtractionTime = "extraction_time"
)

// ExtractionResult is the output of a format extractor. Text may be empty
// when extraction fails or the format is unsupported; that is a capability
// limitation, not an error.
type ExtractionResult struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}
