package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/accounts-server/internal/model"
)

// ErrInvalidSession is returned when a session token fails validation.
var ErrInvalidSession = errors.New("invalid session")

const typeSession = "session"

// Claims represents session token claims.
type Claims struct {
	jwt.RegisteredClaims
	User      model.SessionUser `json:"user"`
	TokenType string            `json:"typ"`
}

// JWT implements SessionManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a session manager issuing tokens valid for ttl.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{
		secretKey: secretKey,
		ttl:       ttl,
		now:       time.Now,
	}
}

var _ model.SessionManager = (*JWT)(nil)

// Issue signs a session token for user.
func (j *JWT) Issue(user model.SessionUser) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		User:      user,
		TokenType: typeSession,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a session token and returns the user it carries.
func (j *JWT) Parse(tokenString string) (model.SessionUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if !token.Valid {
		return model.SessionUser{}, ErrInvalidSession
	}
	if claims.TokenType != typeSession {
		return model.SessionUser{}, fmt.Errorf("%w: token type mismatch: %s", ErrInvalidSession, claims.TokenType)
	}

	return claims.User, nil
}
