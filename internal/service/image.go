package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

const (
	// MaxImageSize is the largest accepted upload, 1 MiB.
	MaxImageSize = 1 << 20

	imageKeyAlphabet = "1234567890abcdef"
	imageKeyPrefix   = 10
	sniffLen         = 512
)

var imageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// Image validates uploads and stores them in the configured object storage.
type Image struct {
	storage    model.Storage
	imageStore model.ImageStore
	logger     *logger.Logger
}

func NewImage(storage model.Storage, imageStore model.ImageStore, logger *logger.Logger) *Image {
	return &Image{
		storage:    storage,
		imageStore: imageStore,
		logger:     logger,
	}
}

// Upload stores the image under a random-prefixed key and returns its public
// URL. When owner is set the key is recorded for that user.
func (s *Image) Upload(ctx context.Context, owner *uuid.UUID, upload model.ImageUpload) (string, error) {
	if upload.Size > MaxImageSize {
		return "", apierror.NewErrFileTooLarge("1MB")
	}
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	if !imageTypes[contentType] {
		return "", apierror.NewErrUnsupportedFileType(upload.ContentType)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Body, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", apierror.NewErrFileTooLarge("1MB")
	}
	sniffed := http.DetectContentType(data[:min(len(data), sniffLen)])
	if sniffed != contentType {
		return "", apierror.NewErrUnsupportedFileType(sniffed)
	}

	key, err := imageKey(upload.Filename)
	if err != nil {
		return "", err
	}

	publicURL, err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		s.logger.Error("Image service: failed to upload image",
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if owner != nil {
		if _, err := s.imageStore.Create(ctx, model.Image{UserID: *owner, Key: key}); err != nil {
			if delErr := s.storage.Delete(ctx, key); delErr != nil {
				s.logger.Error("Image service: failed to remove orphaned image",
					"key", key,
					"error", delErr.Error())
			}
			return "", fmt.Errorf("failed to record image: %w", err)
		}
	}

	s.logger.Info("Image service: image uploaded",
		"key", key,
		"size", len(data))

	return publicURL, nil
}

func imageKey(filename string) (string, error) {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "image"
	}

	prefix, err := randomString(imageKeyAlphabet, imageKeyPrefix)
	if err != nil {
		return "", err
	}
	return prefix + "-" + name, nil
}
