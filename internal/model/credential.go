package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CredentialStore defines persistence operations for WebAuthn credentials.
type CredentialStore interface {
	Create(ctx context.Context, credential Credential) (Credential, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Credential, error)
	FindByID(ctx context.Context, id string) (Credential, error)
	// Delete removes the credential only if it belongs to userID.
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	UpdateCounter(ctx context.Context, id string, counter uint32, backedUp bool) error
}

// Credential is a registered passkey. ID and PublicKey are base64url encoded.
type Credential struct {
	ID              string    `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Name            string    `json:"name"`
	PublicKey       string    `json:"publicKey"`
	Counter         uint32    `json:"counter"`
	Transports      []string  `json:"transports"`
	BackedUp        bool      `json:"backedUp"`
	BackupEligible  bool      `json:"-"`
	AttestationType string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
}
