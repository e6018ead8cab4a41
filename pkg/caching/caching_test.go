package caching

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}

	url := "https://www.irs.gov/forms"
	if err := c.Set(url, []byte("reference text")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	data, ok := c.Get(url)
	if !ok {
		t.Fatal("Get() miss, want hit")
	}
	if string(data) != "reference text" {
		t.Errorf("Get() = %q, want %q", data, "reference text")
	}
}

func TestCacheMiss(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}

	if _, ok := c.Get("https://example.gov/never-set"); ok {
		t.Error("Get() hit, want miss for unknown URL")
	}
}

func TestCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir, time.Minute)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}

	url := "https://www.sec.gov"
	if err := c.Set(url, []byte("stale")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// Age the entry past the TTL.
	old := time.Now().Add(-2 * time.Minute)
	if err := os.Chtimes(filepath.Join(dir, c.key(url)), old, old); err != nil {
		t.Fatalf("failed to age cache entry: %v", err)
	}

	if _, ok := c.Get(url); ok {
		t.Error("Get() hit, want miss for an expired entry")
	}
}

func TestCacheKeyIsStable(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}

	if c.key("https://a") != c.key("https://a") {
		t.Error("key() not stable for identical URLs")
	}
	if c.key("https://a") == c.key("https://b") {
		t.Error("key() collides for different URLs")
	}
}
