package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/model"
)

var _ model.ImageStore = (*ImageRepository)(nil)

type ImageRepository struct {
	db *Connection
}

func NewImageRepository(db *Connection) *ImageRepository {
	return &ImageRepository{
		db: db,
	}
}

func (r *ImageRepository) Create(ctx context.Context, image model.Image) (model.Image, error) {
	const query = `
		INSERT INTO images (id, user_id, key)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, key, created_at`

	id := image.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var saved model.Image
	if err := r.db.QueryRow(ctx, query, id, image.UserID, image.Key).Scan(
		&saved.ID, &saved.UserID, &saved.Key, &saved.CreatedAt,
	); err != nil {
		return model.Image{}, fmt.Errorf("failed to create image: %w", err)
	}

	return saved, nil
}
