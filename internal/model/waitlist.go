package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WaitlistStore persists waitlist sign-ups.
type WaitlistStore interface {
	// Join adds the email; an existing email is returned unchanged.
	Join(ctx context.Context, entry WaitlistEntry) (WaitlistEntry, error)
}

// WaitlistEntry is a pre-launch sign-up.
type WaitlistEntry struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Referrer  *string   `json:"referrer,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
