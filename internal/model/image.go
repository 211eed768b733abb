package model

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// ImageStore records uploaded images owned by users.
type ImageStore interface {
	Create(ctx context.Context, image Image) (Image, error)
}

// Image references an uploaded object by its storage key.
type Image struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Key       string
	CreatedAt time.Time
}

// ImageUpload is an image received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
