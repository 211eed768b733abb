package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/accounts-server/internal/model"
)

var _ model.CredentialStore = (*CredentialRepository)(nil)

const credentialColumns = `id, user_id, name, public_key, counter, transports, backed_up,
	backup_eligible, attestation_type, created_at`

type CredentialRepository struct {
	db *Connection
}

func NewCredentialRepository(db *Connection) *CredentialRepository {
	return &CredentialRepository{
		db: db,
	}
}

func scanCredential(row pgx.Row) (model.Credential, error) {
	var c model.Credential
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.PublicKey, &c.Counter, &c.Transports, &c.BackedUp,
		&c.BackupEligible, &c.AttestationType, &c.CreatedAt,
	)
	return c, err
}

func (r *CredentialRepository) Create(ctx context.Context, credential model.Credential) (model.Credential, error) {
	query := `INSERT INTO credentials (id, user_id, name, public_key, counter, transports, backed_up, backup_eligible, attestation_type)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + credentialColumns

	transports := credential.Transports
	if transports == nil {
		transports = []string{}
	}

	saved, err := scanCredential(r.db.QueryRow(ctx, query,
		credential.ID, credential.UserID, credential.Name, credential.PublicKey, credential.Counter,
		transports, credential.BackedUp, credential.BackupEligible, credential.AttestationType,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Credential{}, model.ErrConflict
		}
		return model.Credential{}, fmt.Errorf("failed to create credential: %w", err)
	}

	return saved, nil
}

func (r *CredentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find credentials by user id: %w", err)
	}
	defer rows.Close()

	credentials := []model.Credential{}
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credential: %w", err)
		}
		credentials = append(credentials, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to find credentials by user id: %w", err)
	}

	return credentials, nil
}

func (r *CredentialRepository) FindByID(ctx context.Context, id string) (model.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE id = $1`

	c, err := scanCredential(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Credential{}, model.ErrNotFound
		}
		return model.Credential{}, fmt.Errorf("failed to find credential by id: %w", err)
	}

	return c, nil
}

func (r *CredentialRepository) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	const query = `DELETE FROM credentials WHERE user_id = $1 AND id = $2`

	if _, err := r.db.Exec(ctx, query, userID, id); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return nil
}

func (r *CredentialRepository) UpdateCounter(ctx context.Context, id string, counter uint32, backedUp bool) error {
	const query = `UPDATE credentials SET counter = $2, backed_up = $3 WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id, counter, backedUp)
	if err != nil {
		return fmt.Errorf("failed to update credential counter: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
