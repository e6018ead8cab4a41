package check

import (
	"github.com/fsociety-ai/doc-verifier/models"
)

// Output is the structured result of a standalone trusted-source check.
type Output struct {
	Status      string                          `json:"status" yaml:"status"`
	Match       models.TrustedSourceMatchResult `json:"match" yaml:"match"`
	TopKeywords []string                        `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
	Stats       Stats                           `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	SourcesConfigured int     `json:"sources_configured" yaml:"sources_configured"`
	PhrasesChecked    int     `json:"phrases_checked" yaml:"phrases_checked"`
	TotalTimeSeconds  float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}
