// Package scorer turns extraction metadata, moderation output and the
// trusted-source match result into flagged issues and a fused confidence
// score. It is a pure function of its inputs; all I/O happens upstream.
package scorer

import (
	"time"

	"github.com/fsociety-ai/doc-verifier/models"
)

type Scorer struct {
	toxicityThreshold float64
	lowMatchThreshold float64
}

func New(toxicityThreshold, lowMatchThreshold float64) *Scorer {
	if toxicityThreshold <= 0 {
		toxicityThreshold = 0.7
	}
	if lowMatchThreshold <= 0 {
		lowMatchThreshold = 0.3
	}
	return &Scorer{
		toxicityThreshold: toxicityThreshold,
		lowMatchThreshold: lowMatchThreshold,
	}
}

// Evaluate applies every issue rule independently (rules are not mutually
// exclusive) and fuses the confidence score. IsAuthentic is derived by the
// caller from the returned issue list, never set independently.
func (s *Scorer) Evaluate(metadata map[string]any, moderation models.ModerationResult, match models.TrustedSourceMatchResult) ([]string, float64) {
	issues := []string{}

	if encrypted, ok := metadata["encrypted"].(bool); ok && encrypted {
		issues = append(issues, "Document is encrypted which may hide content")
	}
	if suspiciousModification(metadata) {
		issues = append(issues, "Suspicious modification pattern detected")
	}
	if moderation.ToxicityScore > s.toxicityThreshold {
		issues = append(issues, "Document contains potentially harmful content")
	}
	if match.OverallMatchScore < s.lowMatchThreshold && len(match.VerifiedPhrases) > 0 {
		issues = append(issues, "Low match with trusted sources")
	}
	if len(match.UnverifiedPhrases) > len(match.VerifiedPhrases) {
		issues = append(issues, "Multiple unverified statements detected")
	}

	confidence := 0.5
	if metadataString(metadata, "author") != "" &&
		metadataString(metadata, "created") != "" &&
		metadataString(metadata, "title") != "" {
		confidence += 0.1
	}
	confidence -= moderation.ToxicityScore * 0.2
	confidence += match.OverallMatchScore * 0.3

	return issues, clamp(confidence)
}

// suspiciousModification reports whether created and modified timestamps are
// both present and less than a minute apart. Near-simultaneous values
// suggest fabricated metadata.
func suspiciousModification(metadata map[string]any) bool {
	created := metadataString(metadata, "created")
	modified := metadataString(metadata, "modified")
	if created == "" || modified == "" {
		return false
	}
	createdAt, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return false
	}
	modifiedAt, err := time.Parse(time.RFC3339, modified)
	if err != nil {
		return false
	}
	delta := modifiedAt.Sub(createdAt)
	if delta < 0 {
		delta = -delta
	}
	return delta < time.Minute
}

func metadataString(metadata map[string]any, key string) string {
	if v, ok := metadata[key].(string); ok {
		return v
	}
	return ""
}

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
