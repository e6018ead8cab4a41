package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Verdicts table: append-only record of every completed verification
CREATE TABLE IF NOT EXISTS verdicts (
    verdict_id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id TEXT NOT NULL UNIQUE,
    filename TEXT NOT NULL,
    file_size INTEGER NOT NULL,
    file_type TEXT,
    file_hash TEXT NOT NULL,
    is_authentic BOOLEAN NOT NULL,
    confidence REAL NOT NULL,
    category TEXT NOT NULL,

    -- Flagged issues as a JSON array of strings
    issues TEXT NOT NULL DEFAULT '[]',

    match_score REAL NOT NULL DEFAULT 0,
    storage_path TEXT,
    stored_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Dedup/audit lookups by content hash
CREATE INDEX IF NOT EXISTS idx_verdicts_file_hash ON verdicts(file_hash);
CREATE INDEX IF NOT EXISTS idx_verdicts_category ON verdicts(category);
`
