package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// maxUploadBody leaves room for multipart framing around a maximum size image.
const maxUploadBody = 2 << 20

// ImageService stores uploaded images.
type ImageService interface {
	Upload(ctx context.Context, owner *uuid.UUID, upload model.ImageUpload) (string, error)
}

type Image struct {
	imageService   ImageService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewImage(imageService ImageService, contextManager model.ContextManager, logger *logger.Logger) *Image {
	return &Image{
		imageService:   imageService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Upload reads the multipart field "image" and responds with the public URL
// as a JSON string.
func (h *Image) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)

	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, apierror.NewErrFileTooLarge("1MB"))
			return
		}
		writeError(w, apierror.NewErrInvalidInput("form field image is required"))
		return
	}
	defer file.Close()

	var owner *uuid.UUID
	if user, ok := h.contextManager.GetUserFromContext(r.Context()); ok {
		owner = &user.ID
	}

	url, err := h.imageService.Upload(r.Context(), owner, model.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		h.logger.Info("Image handler: upload failed",
			"filename", header.Filename,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, url)
}
