package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72

	purposeEmailVerification = "email-verification"
	purposePasswordReset     = "password-reset"
)

// Auth implements password, one-time code and OAuth sign-in.
type Auth struct {
	userStore  model.UserStore
	codeStore  model.CodeStore
	oauthStore model.OAuthAccountStore
	mailer     model.Mailer
	logger     *logger.Logger
	bcryptCost int
	now        func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	codeStore model.CodeStore,
	oauthStore model.OAuthAccountStore,
	mailer model.Mailer,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:  userStore,
		codeStore:  codeStore,
		oauthStore: oauthStore,
		mailer:     mailer,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// Register creates a password account and sends an email verification code.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.SessionUser, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	email, err := normalizeEmail(params.Email)
	if err != nil {
		return model.SessionUser{}, err
	}
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return model.SessionUser{}, apierror.NewErrInvalidInput("name is required")
	}

	hash, err := a.hashPassword(params.Password)
	if err != nil {
		return model.SessionUser{}, err
	}

	user, err := a.userStore.Create(ctx, model.NewUser{
		Email:          email,
		Name:           name,
		HashedPassword: &hash,
	})
	if errors.Is(err, model.ErrEmailTaken) {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.SessionUser{}, apierror.NewErrEmailIsTaken(email)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.SessionUser{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.sendEmailVerification(ctx, user); err != nil {
		return model.SessionUser{}, err
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", user.ID)

	return model.Sanitize(user), nil
}

// Login checks an email and password pair.
func (a *Auth) Login(ctx context.Context, email, password string) (model.SessionUser, error) {
	user, err := a.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionUser{}, apierror.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.HashedPassword == nil {
		return model.SessionUser{}, apierror.NewErrInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(password)); err != nil {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.SessionUser{}, apierror.NewErrInvalidCredentials()
	}

	return a.signIn(ctx, user)
}

// VerifyEmail consumes an email verification code and marks the email verified.
func (a *Auth) VerifyEmail(ctx context.Context, userID uuid.UUID, code string) (model.SessionUser, error) {
	err := a.codeStore.ConsumeEmailVerificationCode(ctx, userID, strings.TrimSpace(code))
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionUser{}, apierror.NewErrInvalidCode()
	}
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to consume verification code: %w", err)
	}

	user, err := a.userStore.Verify(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionUser{}, apierror.NewErrUserNotFound()
	}
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to verify user: %w", err)
	}

	return model.Sanitize(user), nil
}

// ResendEmailVerification issues a fresh verification code for an unverified user.
func (a *Auth) ResendEmailVerification(ctx context.Context, userID uuid.UUID) error {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrUserNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}
	if user.EmailVerified {
		return apierror.NewErrInvalidInput("Email is already verified")
	}

	return a.sendEmailVerification(ctx, user)
}

// RequestPasswordReset mails a reset code. Unknown emails succeed silently.
func (a *Auth) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := a.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: password reset for unknown email",
			"email", email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	code, err := newCode()
	if err != nil {
		return err
	}
	err = a.codeStore.CreatePasswordResetToken(ctx, model.VerificationCode{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: a.now().Add(model.PasswordResetTokenTTL),
	})
	if err != nil {
		return fmt.Errorf("failed to create password reset token: %w", err)
	}

	if err := a.mailer.SendCode(ctx, user.Email, purposePasswordReset, code); err != nil {
		return fmt.Errorf("failed to send password reset code: %w", err)
	}
	return nil
}

// ResetPassword replaces the password when the reset code matches.
func (a *Auth) ResetPassword(ctx context.Context, email, code, password string) error {
	hash, err := a.hashPassword(password)
	if err != nil {
		return err
	}

	user, err := a.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrInvalidCode()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	err = a.codeStore.ConsumePasswordResetToken(ctx, user.ID, strings.TrimSpace(code))
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrInvalidCode()
	}
	if err != nil {
		return fmt.Errorf("failed to consume password reset token: %w", err)
	}

	if _, err := a.userStore.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password reset",
		"user_id", user.ID)
	return nil
}

// RequestOneTimePassword mails a one-time password. Unknown emails succeed silently.
func (a *Auth) RequestOneTimePassword(ctx context.Context, email string, otpType model.OneTimePasswordType) error {
	if !otpType.Valid() {
		return apierror.NewErrInvalidInput("unknown one-time password type")
	}

	user, err := a.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: one-time password for unknown email",
			"email", email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	code, err := newCode()
	if err != nil {
		return err
	}
	err = a.codeStore.CreateOneTimePassword(ctx, model.OneTimePassword{
		UserID:     user.ID,
		Identifier: user.Email,
		Code:       code,
		Type:       otpType,
		ExpiresAt:  a.now().Add(model.OneTimePasswordTTL),
	})
	if err != nil {
		return fmt.Errorf("failed to create one time password: %w", err)
	}

	if err := a.mailer.SendCode(ctx, user.Email, "otp-"+strings.ToLower(string(otpType)), code); err != nil {
		return fmt.Errorf("failed to send one time password: %w", err)
	}
	return nil
}

// LoginWithOneTimePassword signs in with a LOGIN one-time password. A valid
// code proves ownership of the email, so it is marked verified.
func (a *Auth) LoginWithOneTimePassword(ctx context.Context, email, code string) (model.SessionUser, error) {
	otp, err := a.codeStore.ConsumeOneTimePassword(ctx, strings.TrimSpace(email), strings.TrimSpace(code), model.OneTimePasswordLogin)
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionUser{}, apierror.NewErrInvalidCode()
	}
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to consume one time password: %w", err)
	}

	user, err := a.userStore.GetByID(ctx, otp.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionUser{}, apierror.NewErrUserNotFound()
	}
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !user.EmailVerified {
		if user, err = a.userStore.Verify(ctx, user.ID); err != nil {
			return model.SessionUser{}, fmt.Errorf("failed to verify user: %w", err)
		}
	}

	return a.signIn(ctx, user)
}

// SignInWithOAuth signs in the user linked to a provider identity, creating
// or merging an account by email on the first sign-in.
func (a *Auth) SignInWithOAuth(ctx context.Context, profile model.OAuthProfile) (model.SessionUser, error) {
	if profile.ProviderID == "" || profile.ProviderUserID == "" {
		return model.SessionUser{}, apierror.NewErrInvalidInput("provider identity is required")
	}

	account, err := a.oauthStore.FindByProvider(ctx, profile.ProviderID, profile.ProviderUserID)
	if err == nil {
		user, err := a.userStore.GetByID(ctx, account.UserID)
		if errors.Is(err, model.ErrNotFound) {
			return model.SessionUser{}, apierror.NewErrUserNotFound()
		}
		if err != nil {
			return model.SessionUser{}, fmt.Errorf("failed to get user by id: %w", err)
		}
		return a.signIn(ctx, user)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.SessionUser{}, fmt.Errorf("failed to find oauth account: %w", err)
	}

	email, err := normalizeEmail(profile.Email)
	if err != nil {
		return model.SessionUser{}, err
	}
	newUser := model.NewUser{Email: email, Name: profile.Name}
	if newUser.Name == "" {
		newUser.Name = email
	}
	if profile.AvatarURL != "" {
		newUser.AvatarURL = &profile.AvatarURL
	}

	user, err := a.userStore.UpsertWithOAuth(ctx, newUser)
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	_, err = a.oauthStore.Create(ctx, model.OAuthAccount{
		ProviderID:     profile.ProviderID,
		ProviderUserID: profile.ProviderUserID,
		UserID:         user.ID,
	})
	if err != nil && !errors.Is(err, model.ErrConflict) {
		return model.SessionUser{}, fmt.Errorf("failed to link oauth account: %w", err)
	}

	a.logger.Info("Auth service: oauth account linked",
		"user_id", user.ID,
		"provider", profile.ProviderID)

	return a.signIn(ctx, user)
}

func (a *Auth) signIn(ctx context.Context, user model.User) (model.SessionUser, error) {
	if user.Banned {
		return model.SessionUser{}, apierror.NewErrBanned(deref(user.BannedReason))
	}

	user, err := a.userStore.UpdateLastActive(ctx, user.ID)
	if err != nil {
		return model.SessionUser{}, fmt.Errorf("failed to update last active: %w", err)
	}

	return model.Sanitize(user), nil
}

func (a *Auth) sendEmailVerification(ctx context.Context, user model.User) error {
	code, err := newCode()
	if err != nil {
		return err
	}

	err = a.codeStore.CreateEmailVerificationCode(ctx, model.VerificationCode{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: a.now().Add(model.EmailVerificationCodeTTL),
	})
	if err != nil {
		return fmt.Errorf("failed to create email verification code: %w", err)
	}

	if err := a.mailer.SendCode(ctx, user.Email, purposeEmailVerification, code); err != nil {
		return fmt.Errorf("failed to send email verification code: %w", err)
	}
	return nil
}

func (a *Auth) hashPassword(password string) (string, error) {
	return hashPassword(password, a.bcryptCost)
}

func hashPassword(password string, cost int) (string, error) {
	if len(password) < minPasswordLength {
		return "", apierror.NewErrInvalidInput(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if len(password) > maxPasswordLength {
		return "", apierror.NewErrInvalidInput(fmt.Sprintf("password must be at most %d bytes", maxPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apierror.NewErrInvalidInput("email must be a valid email address")
	}
	return email, nil
}
