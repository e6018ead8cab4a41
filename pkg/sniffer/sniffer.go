// Package sniffer classifies raw document bytes by content. The filename
// extension is untrusted and plays no part in detection.
package sniffer

import (
	"github.com/gabriel-vasile/mimetype"

	"github.com/fsociety-ai/doc-verifier/models"
)

// Detect sniffs magic bytes and structure to classify content, returning the
// dispatch kind and the full MIME string. Unknown content is a capability
// limitation, not an error; it routes to the no-op extractor downstream.
func Detect(data []byte) (models.DocumentKind, string) {
	mtype := mimetype.Detect(data)
	mime := mtype.String()
	return models.KindFromMIME(mime), mime
}
