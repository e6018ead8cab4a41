package models

import "testing"

func TestKindFromMIME(t *testing.T) {
	tests := []struct {
		mime string
		want DocumentKind
	}{
		{"application/pdf", KindPDF},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", KindOfficeDoc},
		{"application/msword", KindOfficeDoc},
		{"text/plain; charset=utf-8", KindPlainText},
		{"text/html", KindPlainText},
		{"image/png", KindUnknown},
		{"application/octet-stream", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		if got := KindFromMIME(tt.mime); got != tt.want {
			t.Errorf("KindFromMIME(%q) = %v, want %v", tt.mime, got, tt.want)
		}
	}
}

func TestDocumentKindString(t *testing.T) {
	tests := []struct {
		kind DocumentKind
		want string
	}{
		{KindPDF, "pdf"},
		{KindOfficeDoc, "office"},
		{KindPlainText, "text"},
		{KindUnknown, "unknown"},
		{DocumentKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
