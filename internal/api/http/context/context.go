package context

import (
	"context"

	"github.com/dtroode/accounts-server/internal/model"
)

type contextKey struct{}

var userKey = contextKey{}

// Manager stores the session user in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.SessionUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the session user stored in ctx and whether it was present.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.SessionUser, bool) {
	user, ok := ctx.Value(userKey).(model.SessionUser)
	return user, ok
}
