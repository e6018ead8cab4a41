package verify

import (
	"github.com/fsociety-ai/doc-verifier/models"
)

// Output is the structured result printed for a single verified document.
type Output struct {
	Status      string                      `json:"status" yaml:"status"`
	Verdict     *models.VerificationVerdict `json:"verdict" yaml:"verdict"`
	TopKeywords []string                    `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
	Stats       Stats                       `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
	ExtractedChars   int     `json:"extracted_chars,omitempty" yaml:"extracted_chars,omitempty"`
}
