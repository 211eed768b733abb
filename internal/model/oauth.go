package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OAuthAccountStore defines persistence operations for OAuth account links.
type OAuthAccountStore interface {
	Create(ctx context.Context, account OAuthAccount) (OAuthAccount, error)
	FindByProvider(ctx context.Context, providerID, providerUserID string) (OAuthAccount, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (OAuthAccount, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]OAuthAccount, error)
	Unlink(ctx context.Context, userID, accountID uuid.UUID) (bool, error)
}

// OAuthAccount links a provider identity to a local user.
type OAuthAccount struct {
	ID             uuid.UUID `json:"id"`
	ProviderID     string    `json:"providerId"`
	ProviderUserID string    `json:"providerUserId"`
	UserID         uuid.UUID `json:"userId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// OAuthProfile is a verified identity returned by an OAuth provider.
type OAuthProfile struct {
	ProviderID     string
	ProviderUserID string
	Email          string
	Name           string
	AvatarURL      string
}
