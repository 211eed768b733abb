package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

const maxPostTitleLength = 200

type Post struct {
	postStore model.PostStore
	logger    *logger.Logger
}

func NewPost(postStore model.PostStore, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		logger:    logger,
	}
}

func (s *Post) Create(ctx context.Context, userID uuid.UUID, title, content string) (model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Post{}, apierror.NewErrInvalidInput("title is required")
	}
	if len(title) > maxPostTitleLength {
		return model.Post{}, apierror.NewErrInvalidInput(fmt.Sprintf("title must be at most %d characters", maxPostTitleLength))
	}

	post, err := s.postStore.Create(ctx, model.Post{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		s.logger.Error("Post service: failed to create post",
			"user_id", userID,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *Post) List(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	posts, err := s.postStore.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *Post) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	err := s.postStore.Delete(ctx, userID, postID)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrNotFound("Post")
	}
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
