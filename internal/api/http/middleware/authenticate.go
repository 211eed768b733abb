package middleware

import (
	"net/http"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// Authenticate decodes the session cookie and injects the session user into
// the request context.
type Authenticate struct {
	sessionManager model.SessionManager
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	sessionManager model.SessionManager,
	contextManager model.ContextManager,
	cookieName string,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		sessionManager: sessionManager,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Required rejects requests without a valid session with 401.
func (m *Authenticate) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.sessionUser(r)
		if !ok {
			apierror.Write(w, apierror.NewErrUnauthorized())
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserToContext(r.Context(), user)))
	})
}

// Optional injects the session user when present and lets anonymous requests through.
func (m *Authenticate) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := m.sessionUser(r); ok {
			r = r.WithContext(m.contextManager.SetUserToContext(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Authenticate) sessionUser(r *http.Request) (model.SessionUser, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return model.SessionUser{}, false
	}

	user, err := m.sessionManager.Parse(cookie.Value)
	if err != nil {
		m.logger.Debug("Authenticate middleware: invalid session",
			"path", r.URL.Path,
			"error", err.Error())
		return model.SessionUser{}, false
	}

	return user, true
}
