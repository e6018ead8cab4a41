package common

import (
	"testing"
)

func TestContentHash(t *testing.T) {
	// SHA256 of "abc"
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := ContentHash([]byte("abc")); got != want {
		t.Errorf("ContentHash(abc) = %s, want %s", got, want)
	}

	if ContentHash([]byte("a")) == ContentHash([]byte("b")) {
		t.Error("different content produced the same hash")
	}
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "https://example.com", "https://example.com"},
		{"whitespace", "  https://example.com  ", "https://example.com"},
		{"trailing comma", "https://example.com,", "https://example.com"},
		{"trailing period", "https://example.com.", "https://example.com"},
		{"wrapped in parens", "(https://example.com)", "https://example.com"},
		{"markdown link", "[IRS](https://www.irs.gov/forms)", "https://www.irs.gov/forms"},
		{"angle brackets", "<https://example.com>", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeAndValidateURLs(t *testing.T) {
	urls := []string{
		"https://www.irs.gov/forms,",
		"not a url",
		"ftp://example.com/file",
		"https://example.com/path",
		"https://bad{host}.com",
	}

	sanitized, invalid := SanitizeAndValidateURLs(urls)

	wantValid := []string{"https://www.irs.gov/forms", "https://example.com/path"}
	if len(sanitized) != len(wantValid) {
		t.Fatalf("sanitized = %v, want %v", sanitized, wantValid)
	}
	for i := range wantValid {
		if sanitized[i] != wantValid[i] {
			t.Errorf("sanitized[%d] = %q, want %q", i, sanitized[i], wantValid[i])
		}
	}
	if len(invalid) != 3 {
		t.Errorf("invalid = %v, want 3 entries", invalid)
	}
}
