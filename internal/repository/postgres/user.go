package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/accounts-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, email, email_verified, role, name, avatar_url, hashed_password,
	banned, banned_reason, onboarded, created_at, updated_at, last_active`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.EmailVerified, &user.Role, &user.Name, &user.AvatarURL,
		&user.HashedPassword, &user.Banned, &user.BannedReason, &user.Onboarded,
		&user.CreatedAt, &user.UpdatedAt, &user.LastActive,
	)
	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.NewUser) (model.User, error) {
	query := `INSERT INTO users (id, email, name, avatar_url, hashed_password, email_verified, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		newUserID(user.ID), user.Email, user.Name, user.AvatarURL, user.HashedPassword,
		user.EmailVerified, roleOrDefault(user.Role),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) UpsertWithPassword(ctx context.Context, user model.NewUser) (model.User, error) {
	query := `INSERT INTO users (id, email, name, hashed_password, email_verified, role)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (email) DO UPDATE
			  SET name = EXCLUDED.name, hashed_password = EXCLUDED.hashed_password, updated_at = NOW()
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		newUserID(user.ID), user.Email, user.Name, user.HashedPassword,
		user.EmailVerified, roleOrDefault(user.Role),
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) UpsertWithOAuth(ctx context.Context, user model.NewUser) (model.User, error) {
	query := `INSERT INTO users (id, email, name, avatar_url, email_verified, role)
			  VALUES ($1, $2, $3, $4, TRUE, $5)
			  ON CONFLICT (email) DO UPDATE
			  SET name = EXCLUDED.name, avatar_url = EXCLUDED.avatar_url, email_verified = TRUE, updated_at = NOW()
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		newUserID(user.ID), user.Email, user.Name, user.AvatarURL, roleOrDefault(user.Role),
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (model.User, error) {
	query := `UPDATE users
			  SET name = COALESCE($2, name),
			      avatar_url = COALESCE($3, avatar_url),
			      onboarded = COALESCE($4, onboarded),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	return r.updateOne(ctx, "failed to update user", query, id, update.Name, update.AvatarURL, update.Onboarded)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) (model.User, error) {
	query := `UPDATE users SET hashed_password = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	return r.updateOne(ctx, "failed to update user password", query, id, hashedPassword)
}

func (r *UserRepository) UpdateLastActive(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `UPDATE users SET last_active = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	return r.updateOne(ctx, "failed to update last active", query, id)
}

func (r *UserRepository) Verify(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `UPDATE users SET email_verified = TRUE, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	return r.updateOne(ctx, "failed to verify user", query, id)
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns

	return r.updateOne(ctx, "failed to delete user", query, id)
}

func (r *UserRepository) updateOne(ctx context.Context, msg, query string, args ...any) (model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("%s: %w", msg, err)
	}

	return user, nil
}

func newUserID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

func roleOrDefault(role model.Role) model.Role {
	if role == "" {
		return model.RoleUser
	}
	return role
}
