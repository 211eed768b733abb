package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dtroode/accounts-server/internal/model"
)

// attemptCookieName carries the WebAuthn attempt id between the two halves of a ceremony.
const attemptCookieName = "webauthn-attempt-id"

// SessionCookie issues and clears the signed session cookie.
type SessionCookie struct {
	manager model.SessionManager
	name    string
	ttl     time.Duration
	secure  bool
}

func NewSessionCookie(manager model.SessionManager, name string, ttl time.Duration, secure bool) *SessionCookie {
	return &SessionCookie{
		manager: manager,
		name:    name,
		ttl:     ttl,
		secure:  secure,
	}
}

// Set issues a session for user and writes it as a cookie.
func (s *SessionCookie) Set(w http.ResponseWriter, user model.SessionUser) error {
	token, err := s.manager.Issue(user)
	if err != nil {
		return fmt.Errorf("failed to issue session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionCookie) setAttempt(w http.ResponseWriter, attemptID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     attemptCookieName,
		Value:    attemptID,
		Path:     "/",
		MaxAge:   int(model.ChallengeTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *SessionCookie) clearAttempt(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     attemptCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
	})
}

// attemptID prefers the id sent in the body and falls back to the cookie.
func attemptID(r *http.Request, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	if cookie, err := r.Cookie(attemptCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
