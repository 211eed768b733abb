package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/accounts-server/internal/model"
)

var _ model.ChallengeStore = (*ChallengeRepository)(nil)

type ChallengeRepository struct {
	db  *Connection
	now func() time.Time
}

func NewChallengeRepository(db *Connection) *ChallengeRepository {
	return &ChallengeRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *ChallengeRepository) Store(ctx context.Context, attemptID, challenge string) error {
	const query = `INSERT INTO webauthn_challenges (id, challenge, expires_at) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, attemptID, challenge, r.now().Add(model.ChallengeTTL)); err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		return fmt.Errorf("failed to store challenge: %w", err)
	}

	return nil
}

// GetAndDelete runs as a single statement, so the purge and the consume share
// one snapshot and a challenge is handed out at most once.
func (r *ChallengeRepository) GetAndDelete(ctx context.Context, attemptID string) (string, error) {
	const query = `
		WITH purged AS (
			DELETE FROM webauthn_challenges WHERE expires_at < $2
		)
		DELETE FROM webauthn_challenges
		WHERE id = $1 AND expires_at >= $2
		RETURNING challenge`

	var challenge string
	if err := r.db.QueryRow(ctx, query, attemptID, r.now()).Scan(&challenge); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get challenge: %w", err)
	}

	return challenge, nil
}
