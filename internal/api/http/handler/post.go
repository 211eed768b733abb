package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

type PostService interface {
	Create(ctx context.Context, userID uuid.UUID, title, content string) (model.Post, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Post, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Post struct {
	postService    PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewPost(postService PostService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{
		postService:    postService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Post) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	var req createPostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	post, err := h.postService.Create(r.Context(), session.ID, req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *Post) List(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	posts, err := h.postService.List(r.Context(), session.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if posts == nil {
		posts = []model.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *Post) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	postID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.postService.Delete(r.Context(), session.ID, postID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
