package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// EmailVerificationCodeTTL bounds the lifetime of email verification codes.
	EmailVerificationCodeTTL = 15 * time.Minute
	// PasswordResetTokenTTL bounds the lifetime of password reset codes.
	PasswordResetTokenTTL = 15 * time.Minute
	// OneTimePasswordTTL bounds the lifetime of one-time passwords.
	OneTimePasswordTTL = 10 * time.Minute

	// MaxCodeAttempts wrong guesses lock a code. Only a newly issued code can
	// be consumed after that.
	MaxCodeAttempts = 5
)

// OneTimePasswordType is the purpose a one-time password was issued for.
type OneTimePasswordType string

const (
	OneTimePasswordSignup         OneTimePasswordType = "SIGNUP"
	OneTimePasswordLogin          OneTimePasswordType = "LOGIN"
	OneTimePasswordForgotPassword OneTimePasswordType = "FORGOT_PASSWORD"
)

// Valid reports whether t is a known one-time password type.
func (t OneTimePasswordType) Valid() bool {
	switch t {
	case OneTimePasswordSignup, OneTimePasswordLogin, OneTimePasswordForgotPassword:
		return true
	}
	return false
}

// CodeStore persists single-use, time-bounded codes. Issuing a code replaces
// earlier codes of the same kind for the user. Consume* return ErrNotFound
// when no unexpired code matches. A wrong guess counts against the pending
// code, which stops matching once it has seen MaxCodeAttempts wrong guesses.
type CodeStore interface {
	CreateEmailVerificationCode(ctx context.Context, code VerificationCode) error
	ConsumeEmailVerificationCode(ctx context.Context, userID uuid.UUID, code string) error
	CreatePasswordResetToken(ctx context.Context, code VerificationCode) error
	ConsumePasswordResetToken(ctx context.Context, userID uuid.UUID, code string) error
	CreateOneTimePassword(ctx context.Context, otp OneTimePassword) error
	ConsumeOneTimePassword(ctx context.Context, identifier, code string, otpType OneTimePasswordType) (OneTimePassword, error)
}

// VerificationCode is an email verification code or a password reset token.
type VerificationCode struct {
	UserID    uuid.UUID
	Code      string
	ExpiresAt time.Time
}

// OneTimePassword is a passcode sent to an identifier (an email address).
type OneTimePassword struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Identifier string
	Code       string
	Type       OneTimePasswordType
	ExpiresAt  time.Time
}
