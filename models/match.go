package models

// TrustedSourceMatchResult is the aggregate outcome of checking extracted
// key phrases against the configured trusted sources. A failed match stage
// yields the zero value with Error set; it never aborts the request.
type TrustedSourceMatchResult struct {
	VerifiedPhrases   []string `json:"verified_phrases"`
	UnverifiedPhrases []string `json:"unverified_phrases"`
	MatchedSources    []string `json:"matched_sources"`
	OverallMatchScore float64  `json:"overall_match_score"`
	Error             string   `json:"error,omitempty"`
}
