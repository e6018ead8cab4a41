package models

import "time"

// Document categories, checked in fixed priority order.
const (
	CategoryLegal     = "legal_document"
	CategoryFinancial = "financial_document"
	CategoryPolicy    = "policy_document"
	CategoryIdentity  = "identity_document"
	CategoryGeneral   = "general_document"
)

// VerificationVerdict is the final output of one verification request.
// It is constructed once by the orchestrator after all stages complete;
// IsAuthentic is always derived from Issues, never set independently.
type VerificationVerdict struct {
	DocumentID      string                   `json:"document_id"`
	Filename        string                   `json:"filename"`
	FileSize        int64                    `json:"file_size"`
	FileType        string                   `json:"file_type"`
	FileHash        string                   `json:"file_hash"`
	UploadTimestamp time.Time                `json:"upload_timestamp"`
	IsAuthentic     bool                     `json:"is_authentic"`
	Confidence      float64                  `json:"confidence"`
	Category        string                   `json:"category"`
	Issues          []string                 `json:"issues"`
	Metadata        map[string]any           `json:"metadata"`
	ContentAnalysis ModerationResult         `json:"content_analysis"`
	MatchResult     TrustedSourceMatchResult `json:"match_result"`
	StoragePath     string                   `json:"storage_path"`
}
