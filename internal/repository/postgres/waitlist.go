package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/model"
)

var _ model.WaitlistStore = (*WaitlistRepository)(nil)

type WaitlistRepository struct {
	db *Connection
}

func NewWaitlistRepository(db *Connection) *WaitlistRepository {
	return &WaitlistRepository{
		db: db,
	}
}

func (r *WaitlistRepository) Join(ctx context.Context, entry model.WaitlistEntry) (model.WaitlistEntry, error) {
	// The no-op update makes RETURNING yield the existing row on conflict.
	const query = `
		INSERT INTO waitlist (id, email, referrer)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, referrer, created_at`

	id := entry.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var saved model.WaitlistEntry
	if err := r.db.QueryRow(ctx, query, id, entry.Email, entry.Referrer).Scan(
		&saved.ID, &saved.Email, &saved.Referrer, &saved.CreatedAt,
	); err != nil {
		return model.WaitlistEntry{}, fmt.Errorf("failed to join waitlist: %w", err)
	}

	return saved, nil
}
