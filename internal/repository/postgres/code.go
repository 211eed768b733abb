package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/accounts-server/internal/model"
)

var _ model.CodeStore = (*CodeRepository)(nil)

// CodeRepository stores email verification codes, password reset tokens and
// one-time passwords.
type CodeRepository struct {
	db *Connection
}

func NewCodeRepository(db *Connection) *CodeRepository {
	return &CodeRepository{
		db: db,
	}
}

func (r *CodeRepository) CreateEmailVerificationCode(ctx context.Context, code model.VerificationCode) error {
	return r.replaceCode(ctx, "email_verification_codes", code)
}

func (r *CodeRepository) ConsumeEmailVerificationCode(ctx context.Context, userID uuid.UUID, code string) error {
	return r.consumeCode(ctx, "email_verification_codes", userID, code)
}

func (r *CodeRepository) CreatePasswordResetToken(ctx context.Context, code model.VerificationCode) error {
	return r.replaceCode(ctx, "password_reset_tokens", code)
}

func (r *CodeRepository) ConsumePasswordResetToken(ctx context.Context, userID uuid.UUID, code string) error {
	return r.consumeCode(ctx, "password_reset_tokens", userID, code)
}

// replaceCode drops earlier codes of the user in the same statement as the insert.
// table is always one of the package's own constants.
func (r *CodeRepository) replaceCode(ctx context.Context, table string, code model.VerificationCode) error {
	query := fmt.Sprintf(`
		WITH dropped AS (
			DELETE FROM %[1]s WHERE user_id = $1
		)
		INSERT INTO %[1]s (user_id, code, expires_at) VALUES ($1, $2, $3)`, table)

	if _, err := r.db.Exec(ctx, query, code.UserID, code.Code, code.ExpiresAt); err != nil {
		return fmt.Errorf("failed to create code in %s: %w", table, err)
	}

	return nil
}

func (r *CodeRepository) consumeCode(ctx context.Context, table string, userID uuid.UUID, code string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE user_id = $1 AND code = $2 AND expires_at > NOW() AND attempts < $3
		RETURNING id`, table)

	var id int64
	err := r.db.QueryRow(ctx, query, userID, code, model.MaxCodeAttempts).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to consume code in %s: %w", table, err)
	}

	miss := fmt.Sprintf(`
		UPDATE %s SET attempts = attempts + 1
		WHERE user_id = $1 AND attempts < $2`, table)
	if _, err := r.db.Exec(ctx, miss, userID, model.MaxCodeAttempts); err != nil {
		return fmt.Errorf("failed to count attempt in %s: %w", table, err)
	}

	return model.ErrNotFound
}

func (r *CodeRepository) CreateOneTimePassword(ctx context.Context, otp model.OneTimePassword) error {
	const query = `
		WITH dropped AS (
			DELETE FROM one_time_passwords WHERE identifier = $3 AND type = $5
		)
		INSERT INTO one_time_passwords (id, user_id, identifier, code, type, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	id := otp.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	if _, err := r.db.Exec(ctx, query, id, otp.UserID, otp.Identifier, otp.Code, otp.Type, otp.ExpiresAt); err != nil {
		return fmt.Errorf("failed to create one time password: %w", err)
	}

	return nil
}

func (r *CodeRepository) ConsumeOneTimePassword(ctx context.Context, identifier, code string, otpType model.OneTimePasswordType) (model.OneTimePassword, error) {
	const query = `
		DELETE FROM one_time_passwords
		WHERE identifier = $1 AND code = $2 AND type = $3 AND expires_at > NOW() AND attempts < $4
		RETURNING id, user_id, identifier, code, type, expires_at`

	var otp model.OneTimePassword
	err := r.db.QueryRow(ctx, query, identifier, code, otpType, model.MaxCodeAttempts).Scan(
		&otp.ID, &otp.UserID, &otp.Identifier, &otp.Code, &otp.Type, &otp.ExpiresAt,
	)
	if err == nil {
		return otp, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.OneTimePassword{}, fmt.Errorf("failed to consume one time password: %w", err)
	}

	const miss = `
		UPDATE one_time_passwords SET attempts = attempts + 1
		WHERE identifier = $1 AND type = $2 AND attempts < $3`
	if _, err := r.db.Exec(ctx, miss, identifier, otpType, model.MaxCodeAttempts); err != nil {
		return model.OneTimePassword{}, fmt.Errorf("failed to count one time password attempt: %w", err)
	}

	return model.OneTimePassword{}, model.ErrNotFound
}
