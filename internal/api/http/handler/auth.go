package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// AuthService defines password and one-time code authentication.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.SessionUser, error)
	Login(ctx context.Context, email, password string) (model.SessionUser, error)
	VerifyEmail(ctx context.Context, userID uuid.UUID, code string) (model.SessionUser, error)
	ResendEmailVerification(ctx context.Context, userID uuid.UUID) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, password string) error
	RequestOneTimePassword(ctx context.Context, email string, otpType model.OneTimePasswordType) error
	LoginWithOneTimePassword(ctx context.Context, email, code string) (model.SessionUser, error)
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type codeRequest struct {
	Email    string                    `json:"email"`
	Code     string                    `json:"code"`
	Password string                    `json:"password"`
	Type     model.OneTimePasswordType `json:"type"`
}

// Auth handles password, email code and session endpoints.
type Auth struct {
	authService    AuthService
	sessions       *SessionCookie
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, sessions *SessionCookie, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	user, err := h.authService.Register(r.Context(), model.RegisterParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.startSession(w, http.StatusCreated, user)
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.startSession(w, http.StatusOK, user)
}

func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Session returns the user of the current session.
func (h *Auth) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: user})
}

// VerifyEmail consumes a verification code for the session user and refreshes the session.
func (h *Auth) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	var req codeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.authService.VerifyEmail(r.Context(), session.ID, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}

	h.startSession(w, http.StatusOK, user)
}

func (h *Auth) ResendVerification(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.NewErrUnauthorized())
		return
	}

	if err := h.authService.ResendEmailVerification(r.Context(), session.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.logger.Error("Auth handler: password reset request failed",
			"error", err.Error())
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Email, req.Code, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Auth) RequestOneTimePassword(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Type == "" {
		req.Type = model.OneTimePasswordLogin
	}

	if err := h.authService.RequestOneTimePassword(r.Context(), req.Email, req.Type); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Auth) VerifyOneTimePassword(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.authService.LoginWithOneTimePassword(r.Context(), req.Email, req.Code)
	if err != nil {
		h.logger.Info("Auth handler: one-time password login failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.startSession(w, http.StatusOK, user)
}

func (h *Auth) startSession(w http.ResponseWriter, status int, user model.SessionUser) {
	if err := h.sessions.Set(w, user); err != nil {
		h.logger.Error("Auth handler: failed to issue session",
			"user_id", user.ID,
			"error", err.Error())
		writeError(w, err)
		return
	}
	writeJSON(w, status, userResponse{User: user})
}
