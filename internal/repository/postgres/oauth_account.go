package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/accounts-server/internal/model"
)

var _ model.OAuthAccountStore = (*OAuthAccountRepository)(nil)

const oauthAccountColumns = `id, provider_id, provider_user_id, user_id, created_at, updated_at`

type OAuthAccountRepository struct {
	db *Connection
}

func NewOAuthAccountRepository(db *Connection) *OAuthAccountRepository {
	return &OAuthAccountRepository{
		db: db,
	}
}

func scanOAuthAccount(row pgx.Row) (model.OAuthAccount, error) {
	var a model.OAuthAccount
	err := row.Scan(&a.ID, &a.ProviderID, &a.ProviderUserID, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *OAuthAccountRepository) Create(ctx context.Context, account model.OAuthAccount) (model.OAuthAccount, error) {
	query := `INSERT INTO oauth_accounts (id, provider_id, provider_user_id, user_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + oauthAccountColumns

	id := account.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	saved, err := scanOAuthAccount(r.db.QueryRow(ctx, query, id, account.ProviderID, account.ProviderUserID, account.UserID))
	if err != nil {
		if isUniqueViolation(err) {
			return model.OAuthAccount{}, model.ErrConflict
		}
		return model.OAuthAccount{}, fmt.Errorf("failed to create oauth account: %w", err)
	}

	return saved, nil
}

func (r *OAuthAccountRepository) FindByProvider(ctx context.Context, providerID, providerUserID string) (model.OAuthAccount, error) {
	query := `SELECT ` + oauthAccountColumns + ` FROM oauth_accounts
			  WHERE provider_id = $1 AND provider_user_id = $2`

	a, err := scanOAuthAccount(r.db.QueryRow(ctx, query, providerID, providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.OAuthAccount{}, model.ErrNotFound
		}
		return model.OAuthAccount{}, fmt.Errorf("failed to find oauth account by provider: %w", err)
	}

	return a, nil
}

func (r *OAuthAccountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (model.OAuthAccount, error) {
	query := `SELECT ` + oauthAccountColumns + ` FROM oauth_accounts
			  WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1`

	a, err := scanOAuthAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.OAuthAccount{}, model.ErrNotFound
		}
		return model.OAuthAccount{}, fmt.Errorf("failed to find oauth account by user id: %w", err)
	}

	return a, nil
}

func (r *OAuthAccountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.OAuthAccount, error) {
	query := `SELECT ` + oauthAccountColumns + ` FROM oauth_accounts
			  WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find linked accounts by user id: %w", err)
	}
	defer rows.Close()

	accounts := []model.OAuthAccount{}
	for rows.Next() {
		a, err := scanOAuthAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan oauth account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to find linked accounts by user id: %w", err)
	}

	return accounts, nil
}

func (r *OAuthAccountRepository) Unlink(ctx context.Context, userID, accountID uuid.UUID) (bool, error) {
	const query = `DELETE FROM oauth_accounts WHERE user_id = $1 AND id = $2`

	cmd, err := r.db.Exec(ctx, query, userID, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to unlink account: %w", err)
	}

	return cmd.RowsAffected() > 0, nil
}
