// Package detector classifies reference source URLs by domain type,
// country, and trust tier. Classification is cheap, offline, and based only
// on the URL.
package detector

import (
	"net/url"
	"strings"
)

// SourceProfile describes where a reference URL points.
type SourceProfile struct {
	DomainType string `json:"domain_type" yaml:"domain_type"` // gov, edu, academic, org, commercial, unknown
	Country    string `json:"country" yaml:"country"`         // TLD-based guess: us, uk, de, etc
	TrustTier  string `json:"trust_tier" yaml:"trust_tier"`   // official, institutional, general
}

// Profile classifies a single URL. Malformed URLs get the zero profile with
// DomainType "unknown".
func Profile(rawURL string) SourceProfile {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return SourceProfile{DomainType: "unknown", Country: "unknown", TrustTier: "general"}
	}

	domainType := detectDomainType(u)
	return SourceProfile{
		DomainType: domainType,
		Country:    detectCountry(u),
		TrustTier:  trustTier(domainType),
	}
}

func detectDomainType(u *url.URL) string {
	host := strings.ToLower(u.Host)

	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".mil") {
		return "gov"
	}
	if strings.HasSuffix(host, ".edu") {
		return "edu"
	}

	academicDomains := []string{
		"arxiv.org", "doi.org", "pubmed.ncbi.nlm.nih.gov",
		"scholar.google.com", "researchgate.net", "academia.edu",
	}
	for _, domain := range academicDomains {
		if strings.Contains(host, domain) {
			return "academic"
		}
	}

	if strings.HasSuffix(host, ".org") {
		return "org"
	}

	return "commercial"
}

// detectCountry extracts country from TLD
func detectCountry(u *url.URL) string {
	host := strings.ToLower(u.Host)
	parts := strings.Split(host, ".")

	if len(parts) < 2 {
		return "unknown"
	}

	tld := parts[len(parts)-1]

	countries := map[string]string{
		"uk": "uk", "de": "de", "fr": "fr", "jp": "jp", "cn": "cn",
		"au": "au", "ca": "ca", "in": "in", "br": "br", "ru": "ru",
		"it": "it", "es": "es", "nl": "nl", "se": "se", "ch": "ch",
	}
	if country, ok := countries[tld]; ok {
		return country
	}

	// US implied for .gov, .edu, .mil without a country TLD
	if tld == "gov" || tld == "edu" || tld == "mil" {
		return "us"
	}

	return "unknown"
}

func trustTier(domainType string) string {
	switch domainType {
	case "gov":
		return "official"
	case "edu", "academic", "org":
		return "institutional"
	default:
		return "general"
	}
}
