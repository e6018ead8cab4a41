package models

// ModerationResult is the response of the external moderation engine.
// Empty input text yields the neutral zero value.
type ModerationResult struct {
	ToxicityScore    float64  `json:"toxicity_score"`
	SentimentLabel   string   `json:"sentiment_label"`
	SentimentScore   float64  `json:"sentiment_score"`
	FlaggedSentences []string `json:"flagged_sentences,omitempty"`
}
