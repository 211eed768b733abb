package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// PasskeyService defines the WebAuthn ceremonies and credential management.
type PasskeyService interface {
	BeginAuthentication(ctx context.Context, email string) (model.Ceremony, error)
	FinishAuthentication(ctx context.Context, attemptID string, response json.RawMessage) (model.SessionUser, error)
	BeginRegistration(ctx context.Context, session *model.SessionUser, user model.RegisterUser) (model.Ceremony, error)
	FinishRegistration(ctx context.Context, session *model.SessionUser, attemptID string, user model.RegisterUser, response json.RawMessage) (model.SessionUser, error)
	ListCredentials(ctx context.Context, userID uuid.UUID) ([]model.Credential, error)
	DeleteCredential(ctx context.Context, userID uuid.UUID, credentialID string) error
}

// ceremonyRequest is the body of both halves of a WebAuthn ceremony.
type ceremonyRequest struct {
	Verify    bool               `json:"verify"`
	AttemptID string             `json:"attemptId"`
	UserName  string             `json:"userName"`
	User      model.RegisterUser `json:"user"`
	Response  json.RawMessage    `json:"response"`
}

type userResponse struct {
	User model.SessionUser `json:"user"`
}

type deletePasskeyRequest struct {
	ID string `json:"id"`
}

// Passkey handles WebAuthn endpoints.
type Passkey struct {
	passkeyService PasskeyService
	sessions       *SessionCookie
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPasskey creates a new Passkey handler.
func NewPasskey(passkeyService PasskeyService, sessions *SessionCookie, contextManager model.ContextManager, logger *logger.Logger) *Passkey {
	return &Passkey{
		passkeyService: passkeyService,
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Authenticate runs a login ceremony. The first call returns request options,
// the second verifies the assertion and starts a session.
func (h *Passkey) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req ceremonyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if !req.Verify {
		ceremony, err := h.passkeyService.BeginAuthentication(r.Context(), req.UserName)
		if err != nil {
			h.logger.Info("Passkey handler: login start failed",
				"error", err.Error())
			writeError(w, err)
			return
		}
		h.sessions.setAttempt(w, ceremony.AttemptID)
		writeJSON(w, http.StatusOK, ceremony)
		return
	}

	id := attemptID(r, req.AttemptID)
	if id == "" {
		writeError(w, apierror.NewErrChallengeNotFound())
		return
	}

	user, err := h.passkeyService.FinishAuthentication(r.Context(), id, req.Response)
	if err != nil {
		h.logger.Info("Passkey handler: login failed",
			"attempt_id", id,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.sessions.clearAttempt(w)
	if err := h.sessions.Set(w, user); err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("Passkey handler: login completed",
		"user_id", user.ID)

	writeJSON(w, http.StatusOK, userResponse{User: user})
}

// LinkPasskey registers a passkey for the session user, or creates an
// account when the request is anonymous.
func (h *Passkey) LinkPasskey(w http.ResponseWriter, r *http.Request) {
	var req ceremonyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	var session *model.SessionUser
	if user, ok := h.contextManager.GetUserFromContext(r.Context()); ok {
		session = &user
	}

	if !req.Verify {
		ceremony, err := h.passkeyService.BeginRegistration(r.Context(), session, req.User)
		if err != nil {
			h.logger.Info("Passkey handler: registration start failed",
				"user_name", req.User.UserName,
				"error", err.Error())
			writeError(w, err)
			return
		}
		h.sessions.setAttempt(w, ceremony.AttemptID)
		writeJSON(w, http.StatusOK, ceremony)
		return
	}

	id := attemptID(r, req.AttemptID)
	if id == "" {
		writeError(w, apierror.NewErrChallengeNotFound())
		return
	}

	user, err := h.passkeyService.FinishRegistration(r.Context(), session, id, req.User, req.Response)
	if err != nil {
		h.logger.Info("Passkey handler: registration failed",
			"attempt_id", id,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.sessions.clearAttempt(w)
	if session == nil {
		if err := h.sessions.Set(w, user); err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, userResponse{User: user})
}

// DeletePasskey removes one of the session user's passkeys.
func (h *Passkey) DeletePasskey(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	var req deletePasskeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.passkeyService.DeleteCredential(r.Context(), user.ID, req.ID); err != nil {
		h.logger.Error("Passkey handler: failed to delete passkey",
			"user_id", user.ID,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// LinkedPasskeys lists the session user's passkeys.
func (h *Passkey) LinkedPasskeys(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	credentials, err := h.passkeyService.ListCredentials(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if credentials == nil {
		credentials = []model.Credential{}
	}

	writeJSON(w, http.StatusOK, credentials)
}
