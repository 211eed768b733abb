package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

type WaitlistService interface {
	Join(ctx context.Context, email, referrer string) (model.WaitlistEntry, error)
}

type joinWaitlistRequest struct {
	Email    string `json:"email"`
	Referrer string `json:"referrer"`
}

type Waitlist struct {
	waitlistService WaitlistService
	logger          *logger.Logger
}

func NewWaitlist(waitlistService WaitlistService, logger *logger.Logger) *Waitlist {
	return &Waitlist{
		waitlistService: waitlistService,
		logger:          logger,
	}
}

func (h *Waitlist) Join(w http.ResponseWriter, r *http.Request) {
	var req joinWaitlistRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.waitlistService.Join(r.Context(), req.Email, req.Referrer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
