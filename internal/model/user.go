package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is a user's authorization level.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// Create inserts a new user and fails with ErrEmailTaken when the email exists.
	Create(ctx context.Context, user NewUser) (User, error)
	// UpsertWithPassword inserts a user or, on email conflict, updates name and password.
	UpsertWithPassword(ctx context.Context, user NewUser) (User, error)
	// UpsertWithOAuth inserts a user or, on email conflict, updates name and avatar
	// and marks the email verified.
	UpsertWithOAuth(ctx context.Context, user NewUser) (User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) (User, error)
	UpdateLastActive(ctx context.Context, id uuid.UUID) (User, error)
	Verify(ctx context.Context, id uuid.UUID) (User, error)
	Delete(ctx context.Context, id uuid.UUID) (User, error)
}

// User represents a stored user.
type User struct {
	ID             uuid.UUID
	Email          string
	EmailVerified  bool
	Role           Role
	Name           string
	AvatarURL      *string
	HashedPassword *string
	Banned         bool
	BannedReason   *string
	Onboarded      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastActive     *time.Time
}

// NewUser holds the fields accepted when a user row is inserted.
type NewUser struct {
	ID             uuid.UUID
	Email          string
	Name           string
	AvatarURL      *string
	HashedPassword *string
	EmailVerified  bool
	Role           Role
}

// UserUpdate lists profile fields that may be changed. Nil fields are left untouched.
type UserUpdate struct {
	Name      *string
	AvatarURL *string
	Onboarded *bool
}

// SessionUser is the user projection stored in a session. It never carries
// password material.
type SessionUser struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          Role      `json:"role"`
	AvatarURL     string    `json:"avatarUrl,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	Onboarded     bool      `json:"onboarded"`
}

// Sanitize builds the session projection of u.
func Sanitize(u User) SessionUser {
	su := SessionUser{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		Onboarded:     u.Onboarded,
	}
	if u.AvatarURL != nil {
		su.AvatarURL = *u.AvatarURL
	}
	return su
}

// RegisterParams holds the fields of a password sign-up.
type RegisterParams struct {
	Email    string
	Name     string
	Password string
}
