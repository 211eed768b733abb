package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// AccountService defines profile, subscription and linked account operations.
type AccountService interface {
	Get(ctx context.Context, userID uuid.UUID) (model.SessionUser, error)
	Update(ctx context.Context, userID uuid.UUID, update model.UserUpdate) (model.SessionUser, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	Delete(ctx context.Context, userID uuid.UUID) error
	Subscription(ctx context.Context, userID uuid.UUID) (model.Subscription, error)
	LinkedAccounts(ctx context.Context, userID uuid.UUID) ([]model.OAuthAccount, error)
	UnlinkAccount(ctx context.Context, userID, accountID uuid.UUID) error
}

type updateUserRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	Onboarded *bool   `json:"onboarded"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Account handles endpoints of the signed-in user's account. All routes
// require a session.
type Account struct {
	accountService AccountService
	sessions       *SessionCookie
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAccount creates a new Account handler.
func NewAccount(accountService AccountService, sessions *SessionCookie, contextManager model.ContextManager, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Account) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	user, err := h.accountService.Get(r.Context(), session.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: user})
}

// Update changes profile fields and refreshes the session with the result.
func (h *Account) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.accountService.Update(r.Context(), session.ID, model.UserUpdate{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Onboarded: req.Onboarded,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.sessions.Set(w, user); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: user})
}

func (h *Account) ChangePassword(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	var req changePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.accountService.ChangePassword(r.Context(), session.ID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Delete removes the account and ends the session.
func (h *Account) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	if err := h.accountService.Delete(r.Context(), session.ID); err != nil {
		h.logger.Error("Account handler: failed to delete account",
			"user_id", session.ID,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.sessions.Clear(w)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Account) Subscription(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	sub, err := h.accountService.Subscription(r.Context(), session.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *Account) LinkedAccounts(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	accounts, err := h.accountService.LinkedAccounts(r.Context(), session.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if accounts == nil {
		accounts = []model.OAuthAccount{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *Account) UnlinkAccount(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	accountID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.accountService.UnlinkAccount(r.Context(), session.ID, accountID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
