package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

type Waitlist struct {
	waitlistStore model.WaitlistStore
	logger        *logger.Logger
}

func NewWaitlist(waitlistStore model.WaitlistStore, logger *logger.Logger) *Waitlist {
	return &Waitlist{
		waitlistStore: waitlistStore,
		logger:        logger,
	}
}

// Join signs email up for the waitlist. Joining twice is not an error.
func (s *Waitlist) Join(ctx context.Context, email, referrer string) (model.WaitlistEntry, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return model.WaitlistEntry{}, err
	}

	entry := model.WaitlistEntry{Email: strings.ToLower(email)}
	if referrer = strings.TrimSpace(referrer); referrer != "" {
		entry.Referrer = &referrer
	}

	saved, err := s.waitlistStore.Join(ctx, entry)
	if err != nil {
		s.logger.Error("Waitlist service: failed to join waitlist",
			"email", email,
			"error", err.Error())
		return model.WaitlistEntry{}, fmt.Errorf("failed to join waitlist: %w", err)
	}
	return saved, nil
}
