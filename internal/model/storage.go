package model

import (
	"context"
	"io"
)

// Storage is a blob store that serves uploaded objects publicly.
type Storage interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
