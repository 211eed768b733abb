package model

import (
	"context"
	"time"
)

// ChallengeTTL is how long a stored WebAuthn challenge stays usable.
const ChallengeTTL = 60 * time.Second

// ChallengeStore persists single-use WebAuthn challenges keyed by attempt id.
type ChallengeStore interface {
	Store(ctx context.Context, attemptID, challenge string) error
	// GetAndDelete purges expired challenges, then removes and returns the
	// challenge for attemptID. Returns ErrNotFound when absent or expired.
	GetAndDelete(ctx context.Context, attemptID string) (string, error)
}
