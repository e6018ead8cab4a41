package scorer

import (
	"math"
	"testing"

	"github.com/fsociety-ai/doc-verifier/models"
)

func TestEvaluate_CleanDocument(t *testing.T) {
	s := New(0.7, 0.3)

	metadata := map[string]any{
		"author":  "Jane Roe",
		"created": "2024-01-02T10:00:00Z",
		"title":   "Quarterly Report",
	}
	match := models.TrustedSourceMatchResult{
		VerifiedPhrases:   []string{"a", "b"},
		UnverifiedPhrases: []string{},
		OverallMatchScore: 0.8,
	}

	issues, confidence := s.Evaluate(metadata, models.ModerationResult{}, match)

	if len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
	// 0.5 + 0.1 metadata + 0.8*0.3 match
	if math.Abs(confidence-0.84) > 1e-9 {
		t.Errorf("confidence = %v, want 0.84", confidence)
	}
}

func TestEvaluate_RulesAreIndependent(t *testing.T) {
	s := New(0.7, 0.3)

	metadata := map[string]any{
		"encrypted": true,
		"created":   "2024-01-02T10:00:00Z",
		"modified":  "2024-01-02T10:00:30Z",
	}
	moderation := models.ModerationResult{ToxicityScore: 0.9}

	issues, _ := s.Evaluate(metadata, moderation, models.TrustedSourceMatchResult{})

	want := []string{
		"Document is encrypted which may hide content",
		"Suspicious modification pattern detected",
		"Document contains potentially harmful content",
	}
	if len(issues) != len(want) {
		t.Fatalf("issues = %v, want %v", issues, want)
	}
	for i := range want {
		if issues[i] != want[i] {
			t.Errorf("issues[%d] = %q, want %q", i, issues[i], want[i])
		}
	}
}

func TestEvaluate_LowMatchRequiresVerifiedPhrases(t *testing.T) {
	s := New(0.7, 0.3)

	// Zero verified phrases: the low-match rule must not fire even with a
	// score of zero, otherwise every empty document gets flagged.
	match := models.TrustedSourceMatchResult{
		VerifiedPhrases:   []string{},
		UnverifiedPhrases: []string{},
		OverallMatchScore: 0,
	}
	issues, _ := s.Evaluate(map[string]any{}, models.ModerationResult{}, match)
	for _, issue := range issues {
		if issue == "Low match with trusted sources" {
			t.Error("low-match issue fired with no verified phrases")
		}
	}

	match.VerifiedPhrases = []string{"a"}
	match.UnverifiedPhrases = []string{"b", "c", "d", "e", "f"}
	match.OverallMatchScore = 0.17
	issues, _ = s.Evaluate(map[string]any{}, models.ModerationResult{}, match)

	var lowMatch, unverified bool
	for _, issue := range issues {
		switch issue {
		case "Low match with trusted sources":
			lowMatch = true
		case "Multiple unverified statements detected":
			unverified = true
		}
	}
	if !lowMatch {
		t.Error("low-match issue did not fire at score 0.17 with verified phrases")
	}
	if !unverified {
		t.Error("unverified-majority issue did not fire with 5 unverified vs 1 verified")
	}
}

func TestEvaluate_ToxicityAtThresholdDoesNotFire(t *testing.T) {
	s := New(0.7, 0.3)

	issues, _ := s.Evaluate(map[string]any{}, models.ModerationResult{ToxicityScore: 0.7}, models.TrustedSourceMatchResult{})
	for _, issue := range issues {
		if issue == "Document contains potentially harmful content" {
			t.Error("toxicity issue fired at exactly the threshold")
		}
	}
}

func TestEvaluate_ConfidenceClamped(t *testing.T) {
	s := New(0.7, 0.3)

	// Maximum toxicity and nothing else pushes below zero before clamping.
	_, confidence := s.Evaluate(map[string]any{}, models.ModerationResult{ToxicityScore: 1.0}, models.TrustedSourceMatchResult{})
	if confidence < 0 {
		t.Errorf("confidence = %v, want clamped to [0,1]", confidence)
	}

	metadata := map[string]any{
		"author":  "a",
		"created": "c",
		"title":   "t",
	}
	match := models.TrustedSourceMatchResult{OverallMatchScore: 2.0, VerifiedPhrases: []string{"a"}}
	_, confidence = s.Evaluate(metadata, models.ModerationResult{}, match)
	if confidence > 1 {
		t.Errorf("confidence = %v, want clamped to [0,1]", confidence)
	}
}

func TestEvaluate_PartialMetadataNoBonus(t *testing.T) {
	s := New(0.7, 0.3)

	metadata := map[string]any{
		"author": "Jane Roe",
		"title":  "Quarterly Report",
		// created missing
	}
	_, confidence := s.Evaluate(metadata, models.ModerationResult{}, models.TrustedSourceMatchResult{})
	if math.Abs(confidence-0.5) > 1e-9 {
		t.Errorf("confidence = %v, want 0.5 with incomplete metadata", confidence)
	}
}

func TestSuspiciousModification(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]any
		want     bool
	}{
		{
			name: "thirty seconds apart",
			metadata: map[string]any{
				"created":  "2024-01-02T10:00:00Z",
				"modified": "2024-01-02T10:00:30Z",
			},
			want: true,
		},
		{
			name: "exactly one minute apart",
			metadata: map[string]any{
				"created":  "2024-01-02T10:00:00Z",
				"modified": "2024-01-02T10:01:00Z",
			},
			want: false,
		},
		{
			name: "modified before created",
			metadata: map[string]any{
				"created":  "2024-01-02T10:00:30Z",
				"modified": "2024-01-02T10:00:00Z",
			},
			want: true,
		},
		{
			name: "missing modified",
			metadata: map[string]any{
				"created": "2024-01-02T10:00:00Z",
			},
			want: false,
		},
		{
			name: "unparseable timestamps",
			metadata: map[string]any{
				"created":  "yesterday",
				"modified": "today",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := suspiciousModification(tt.metadata); got != tt.want {
				t.Errorf("suspiciousModification() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		want     string
	}{
		{"legal filename", "service-agreement.pdf", "", models.CategoryLegal},
		{"financial filename", "annual-report.docx", "", models.CategoryFinancial},
		{"policy filename", "employee-handbook.pdf", "", models.CategoryPolicy},
		{"identity filename", "passport-scan.pdf", "", models.CategoryIdentity},
		{"legal content", "upload.txt", "The parties hereby agree to the following conditions.", models.CategoryLegal},
		{"financial content", "upload.txt", "Total revenue grew while profit margins narrowed.", models.CategoryFinancial},
		{"filename outranks content", "contract.pdf", "Total revenue grew this year.", models.CategoryLegal},
		{"no signal", "notes.txt", "The weather was pleasant.", models.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.filename, tt.text); got != tt.want {
				t.Errorf("Classify(%q, ...) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
