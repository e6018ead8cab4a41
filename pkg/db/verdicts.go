package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsociety-ai/doc-verifier/models"
)

// VerdictRecord is a stored verdict row.
type VerdictRecord struct {
	DocumentID  string
	Filename    string
	FileSize    int64
	FileType    string
	FileHash    string
	IsAuthentic bool
	Confidence  float64
	Category    string
	Issues      []string
	MatchScore  float64
	StoragePath string
	StoredAt    time.Time
}

// InsertVerdict appends a completed verdict to the sink.
func (db *DB) InsertVerdict(v *models.VerificationVerdict) error {
	issues, err := json.Marshal(v.Issues)
	if err != nil {
		return fmt.Errorf("failed to encode issues: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO verdicts (
			document_id, filename, file_size, file_type, file_hash,
			is_authentic, confidence, category, issues, match_score,
			storage_path, stored_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.DocumentID, v.Filename, v.FileSize, v.FileType, v.FileHash,
		v.IsAuthentic, v.Confidence, v.Category, string(issues),
		v.MatchResult.OverallMatchScore, v.StoragePath,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert verdict: %w", err)
	}
	return nil
}

// GetVerdict returns the stored verdict for a document ID.
func (db *DB) GetVerdict(documentID string) (*VerdictRecord, error) {
	row := db.QueryRow(`
		SELECT document_id, filename, file_size, file_type, file_hash,
		       is_authentic, confidence, category, issues, match_score,
		       storage_path, stored_at
		FROM verdicts WHERE document_id = ?`, documentID)
	return scanVerdict(row)
}

// ListVerdicts returns the most recent verdicts, newest first.
func (db *DB) ListVerdicts(limit int) ([]VerdictRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT document_id, filename, file_size, file_type, file_hash,
		       is_authentic, confidence, category, issues, match_score,
		       storage_path, stored_at
		FROM verdicts ORDER BY verdict_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query verdicts: %w", err)
	}
	defer rows.Close()

	var records []VerdictRecord
	for rows.Next() {
		rec, err := scanVerdict(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVerdict(row rowScanner) (*VerdictRecord, error) {
	var rec VerdictRecord
	var issuesJSON, storedAt string
	err := row.Scan(
		&rec.DocumentID, &rec.Filename, &rec.FileSize, &rec.FileType,
		&rec.FileHash, &rec.IsAuthentic, &rec.Confidence, &rec.Category,
		&issuesJSON, &rec.MatchScore, &rec.StoragePath, &storedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan verdict: %w", err)
	}
	if err := json.Unmarshal([]byte(issuesJSON), &rec.Issues); err != nil {
		return nil, fmt.Errorf("failed to decode issues: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339, storedAt); err == nil {
		rec.StoredAt = ts
	}
	return &rec, nil
}
