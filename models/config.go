// Package models defines shared data structures and configuration for the
// verification pipeline.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration, loaded from YAML with defaults
// applied for every omitted field. CLI flags may override individual values.
type Config struct {
	TrustedSources []string          `yaml:"trusted_sources"`
	Fetch          FetchOptions      `yaml:"fetch"`
	Match          MatchOptions      `yaml:"match"`
	Moderation     ModerationOptions `yaml:"moderation"`
	Storage        StorageOptions    `yaml:"storage"`
	Database       DatabaseOptions   `yaml:"database"`
}

// FetchOptions configures the concurrent fetcher.
type FetchOptions struct {
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	Workers         int    `yaml:"workers"`
	UserAgent       string `yaml:"user_agent"`
	CacheDir        string `yaml:"cache_dir"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
}

// Timeout returns the per-fetch timeout as a duration.
func (f FetchOptions) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long cached reference text stays fresh.
func (f FetchOptions) CacheTTL() time.Duration {
	return time.Duration(f.CacheTTLMinutes) * time.Minute
}

// MatchOptions configures trusted-source matching.
type MatchOptions struct {
	MaxKeyPhrases       int     `yaml:"max_key_phrases"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	LowMatchThreshold   float64 `yaml:"low_match_threshold"`
}

// ModerationOptions configures the external moderation engine client.
type ModerationOptions struct {
	Endpoint          string  `yaml:"endpoint"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	ToxicityThreshold float64 `yaml:"toxicity_threshold"`
}

// Timeout returns the moderation call timeout as a duration.
func (m ModerationOptions) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// StorageOptions selects and configures the blob store backend.
type StorageOptions struct {
	Backend string       `yaml:"backend"` // "fs" or "minio"
	Dir     string       `yaml:"dir"`
	Minio   MinioOptions `yaml:"minio"`
}

// MinioOptions holds MinIO connection settings.
type MinioOptions struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// DatabaseOptions holds the verdict sink location.
type DatabaseOptions struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns a configuration with every field set to its default.
func DefaultConfig() *Config {
	return &Config{
		TrustedSources: []string{
			"https://www.govinfo.gov",
			"https://www.irs.gov",
			"https://www.sec.gov",
			"https://www.justice.gov",
			"https://www.ftc.gov",
		},
		Fetch: FetchOptions{
			TimeoutSeconds:  30,
			Workers:         4,
			UserAgent:       "doc-verifier/1.0",
			CacheTTLMinutes: 60,
		},
		Match: MatchOptions{
			MaxKeyPhrases:       20,
			SimilarityThreshold: 0.6,
			LowMatchThreshold:   0.3,
		},
		Moderation: ModerationOptions{
			TimeoutSeconds:    15,
			ToxicityThreshold: 0.7,
		},
		Storage: StorageOptions{
			Backend: "fs",
			Dir:     "documents",
		},
		Database: DatabaseOptions{
			Path: "doc-verifier.db",
		},
	}
}

// LoadConfig reads the YAML config at path over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values left by a partial YAML file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if len(c.TrustedSources) == 0 {
		c.TrustedSources = def.TrustedSources
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		c.Fetch.TimeoutSeconds = def.Fetch.TimeoutSeconds
	}
	if c.Fetch.Workers <= 0 {
		c.Fetch.Workers = def.Fetch.Workers
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = def.Fetch.UserAgent
	}
	if c.Fetch.CacheTTLMinutes <= 0 {
		c.Fetch.CacheTTLMinutes = def.Fetch.CacheTTLMinutes
	}
	if c.Match.MaxKeyPhrases <= 0 {
		c.Match.MaxKeyPhrases = def.Match.MaxKeyPhrases
	}
	if c.Match.SimilarityThreshold <= 0 {
		c.Match.SimilarityThreshold = def.Match.SimilarityThreshold
	}
	if c.Match.LowMatchThreshold <= 0 {
		c.Match.LowMatchThreshold = def.Match.LowMatchThreshold
	}
	if c.Moderation.TimeoutSeconds <= 0 {
		c.Moderation.TimeoutSeconds = def.Moderation.TimeoutSeconds
	}
	if c.Moderation.ToxicityThreshold <= 0 {
		c.Moderation.ToxicityThreshold = def.Moderation.ToxicityThreshold
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = def.Storage.Dir
	}
	if c.Database.Path == "" {
		c.Database.Path = def.Database.Path
	}
}
