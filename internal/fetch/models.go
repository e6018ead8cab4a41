package fetch

import (
	"github.com/fsociety-ai/doc-verifier/pkg/detector"
)

// ResultOutput is the structured output for a single fetched URL.
type ResultOutput struct {
	URL         string                 `json:"url" yaml:"url"`
	Status      string                 `json:"status" yaml:"status"`
	StatusCode  int                    `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	ContentType string                 `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Chars       int                    `json:"chars,omitempty" yaml:"chars,omitempty"`
	Source      detector.SourceProfile `json:"source" yaml:"source"`
	Note        string                 `json:"note,omitempty" yaml:"note,omitempty"`
	Error       string                 `json:"error,omitempty" yaml:"error,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status" yaml:"status"`
	Results []ResultOutput `json:"results" yaml:"results"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int      `json:"total_urls" yaml:"total_urls"`
	Successful       int      `json:"successful" yaml:"successful"`
	Failed           int      `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64  `json:"total_time_seconds" yaml:"total_time_seconds"`
	TopKeywords      []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}
