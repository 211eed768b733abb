package model

// SessionManager issues and validates session tokens carrying a SessionUser.
type SessionManager interface {
	Issue(user SessionUser) (string, error)
	Parse(token string) (SessionUser, error)
}
