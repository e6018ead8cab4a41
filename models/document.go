package models

import "strings"

// DocumentKind is the closed set of content kinds the pipeline can extract.
type DocumentKind int

const (
	KindUnknown DocumentKind = iota
	KindPDF
	KindOfficeDoc
	KindPlainText
)

func (k DocumentKind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindOfficeDoc:
		return "office"
	case KindPlainText:
		return "text"
	default:
		return "unknown"
	}
}

// KindFromMIME maps a sniffed MIME classification to a DocumentKind.
// The mapping is substring-based: the sniffer reports full media types
// ("application/pdf", "application/vnd.openxmlformats-officedocument...").
func KindFromMIME(mime string) DocumentKind {
	m := strings.ToLower(mime)
	switch {
	case strings.Contains(m, "pdf"):
		return KindPDF
	case strings.Contains(m, "word"), strings.Contains(m, "docx"),
		strings.Contains(m, "officedocument"):
		return KindOfficeDoc
	case strings.Contains(m, "text"):
		return KindPlainText
	default:
		return KindUnknown
	}
}

// Document is the subject of one verification request.
type Document struct {
	ID           string       `json:"id"`
	Filename     string       `json:"filename"`
	RawSize      int64        `json:"raw_size"`
	ContentHash  string       `json:"content_hash"`
	DetectedType string       `json:"detected_type"`
	Kind         DocumentKind `json:"-"`
}
