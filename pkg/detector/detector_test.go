package detector

import (
	"testing"
)

func TestProfile(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		wantDomainType string
		wantCountry    string
		wantTrustTier  string
	}{
		{"federal agency", "https://www.irs.gov/forms", "gov", "us", "official"},
		{"military", "https://www.defense.mil", "gov", "us", "official"},
		{"university", "https://www.mit.edu/research", "edu", "us", "institutional"},
		{"preprint server", "https://arxiv.org/abs/2103.00020", "academic", "unknown", "institutional"},
		{"nonprofit", "https://www.w3.org/TR/", "org", "unknown", "institutional"},
		{"commercial", "https://example.com/page", "commercial", "unknown", "general"},
		{"country TLD", "https://www.gov.uk/guidance", "commercial", "uk", "general"},
		{"malformed", "://nope", "unknown", "unknown", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Profile(tt.url)
			if got.DomainType != tt.wantDomainType {
				t.Errorf("DomainType = %q, want %q", got.DomainType, tt.wantDomainType)
			}
			if got.Country != tt.wantCountry {
				t.Errorf("Country = %q, want %q", got.Country, tt.wantCountry)
			}
			if got.TrustTier != tt.wantTrustTier {
				t.Errorf("TrustTier = %q, want %q", got.TrustTier, tt.wantTrustTier)
			}
		})
	}
}
