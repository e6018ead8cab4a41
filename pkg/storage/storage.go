// Package storage persists raw document bytes. The pipeline consumes the
// store through the BlobStore capability only; backends are interchangeable.
package storage

import (
	"context"
	"fmt"

	"github.com/fsociety-ai/doc-verifier/models"
)

// BlobStore is the storage capability the pipeline depends on. Put failures
// are fatal for the verification request that triggered them.
type BlobStore interface {
	Put(ctx context.Context, path string, data []byte) (string, error)
	Get(ctx context.Context, path string) ([]byte, error)
}

// NewFromConfig builds the configured backend.
func NewFromConfig(opts models.StorageOptions) (BlobStore, error) {
	switch opts.Backend {
	case "", "fs":
		return NewFSStore(opts.Dir)
	case "minio":
		return NewMinioStore(opts.Minio)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", opts.Backend)
	}
}
