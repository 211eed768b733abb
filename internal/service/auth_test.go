package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/accounts-server/internal/mocks"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/testutil"
)

type authDeps struct {
	users  *mocks.UserStore
	codes  *mocks.CodeStore
	oauth  *mocks.OAuthAccountStore
	mailer *mocks.Mailer
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestAuth(t *testing.T) (*Auth, authDeps) {
	deps := authDeps{
		users:  mocks.NewUserStore(t),
		codes:  mocks.NewCodeStore(t),
		oauth:  mocks.NewOAuthAccountStore(t),
		mailer: mocks.NewMailer(t),
	}
	a := NewAuth(deps.users, deps.codes, deps.oauth, deps.mailer, testutil.MakeNoopLogger())
	a.bcryptCost = bcrypt.MinCost
	a.now = func() time.Time { return fixedNow }
	return a, deps
}

func mustHash(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

func TestAuth_Register_Success(t *testing.T) {
	a, deps := newTestAuth(t)
	userID := uuid.New()

	deps.users.On("Create", mock.Anything, mock.MatchedBy(func(u model.NewUser) bool {
		return u.Email == "a@b.c" && u.Name == "Alice" && u.HashedPassword != nil &&
			bcrypt.CompareHashAndPassword([]byte(*u.HashedPassword), []byte("password1")) == nil
	})).Return(model.User{ID: userID, Email: "a@b.c", Name: "Alice", Role: model.RoleUser}, nil)
	deps.codes.On("CreateEmailVerificationCode", mock.Anything, mock.MatchedBy(func(c model.VerificationCode) bool {
		return c.UserID == userID && len(c.Code) == 6 && c.ExpiresAt.Equal(fixedNow.Add(model.EmailVerificationCodeTTL))
	})).Return(nil)
	deps.mailer.On("SendCode", mock.Anything, "a@b.c", purposeEmailVerification, mock.AnythingOfType("string")).Return(nil)

	user, err := a.Register(context.Background(), model.RegisterParams{Email: " a@b.c ", Name: " Alice ", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.False(t, user.EmailVerified)
}

func TestAuth_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params model.RegisterParams
	}{
		{name: "bad email", params: model.RegisterParams{Email: "nope", Name: "A", Password: "password1"}},
		{name: "missing name", params: model.RegisterParams{Email: "a@b.c", Name: "  ", Password: "password1"}},
		{name: "short password", params: model.RegisterParams{Email: "a@b.c", Name: "A", Password: "short"}},
		{name: "long password", params: model.RegisterParams{Email: "a@b.c", Name: "A", Password: strings.Repeat("x", 73)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAuth(t)
			_, err := a.Register(context.Background(), tt.params)
			assertAPIError(t, err, http.StatusBadRequest)
		})
	}
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	a, deps := newTestAuth(t)

	deps.users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrEmailTaken)

	_, err := a.Register(context.Background(), model.RegisterParams{Email: "a@b.c", Name: "A", Password: "password1"})
	assertAPIError(t, err, http.StatusConflict)
}

func TestAuth_Login(t *testing.T) {
	userID := uuid.New()
	reason := "abuse"

	tests := []struct {
		name     string
		user     model.User
		findErr  error
		password string
		wantCode int
	}{
		{name: "success", user: model.User{ID: userID, Email: "a@b.c", HashedPassword: mustHash(t, "password1")}, password: "password1"},
		{name: "wrong password", user: model.User{ID: userID, HashedPassword: mustHash(t, "password1")}, password: "password2", wantCode: http.StatusUnauthorized},
		{name: "unknown user", findErr: model.ErrNotFound, password: "password1", wantCode: http.StatusUnauthorized},
		{name: "passwordless account", user: model.User{ID: userID}, password: "password1", wantCode: http.StatusUnauthorized},
		{name: "banned", user: model.User{ID: userID, HashedPassword: mustHash(t, "password1"), Banned: true, BannedReason: &reason}, password: "password1", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, deps := newTestAuth(t)
			deps.users.On("GetByEmail", mock.Anything, "a@b.c").Return(tt.user, tt.findErr)
			if tt.wantCode == 0 {
				deps.users.On("UpdateLastActive", mock.Anything, userID).Return(tt.user, nil)
			}

			user, err := a.Login(context.Background(), "a@b.c", tt.password)
			if tt.wantCode != 0 {
				assertAPIError(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}
}

func TestAuth_VerifyEmail(t *testing.T) {
	a, deps := newTestAuth(t)
	userID := uuid.New()

	deps.codes.On("ConsumeEmailVerificationCode", mock.Anything, userID, "000000").Return(model.ErrNotFound).Once()
	_, err := a.VerifyEmail(context.Background(), userID, "000000")
	assertAPIError(t, err, http.StatusBadRequest)

	deps.codes.On("ConsumeEmailVerificationCode", mock.Anything, userID, "123456").Return(nil).Once()
	deps.users.On("Verify", mock.Anything, userID).Return(model.User{ID: userID, EmailVerified: true}, nil)

	user, err := a.VerifyEmail(context.Background(), userID, " 123456 ")
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
}

func TestAuth_ResendEmailVerification_AlreadyVerified(t *testing.T) {
	a, deps := newTestAuth(t)
	userID := uuid.New()

	deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, EmailVerified: true}, nil)

	err := a.ResendEmailVerification(context.Background(), userID)
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestAuth_RequestPasswordReset(t *testing.T) {
	t.Run("unknown email is silent", func(t *testing.T) {
		a, deps := newTestAuth(t)
		deps.users.On("GetByEmail", mock.Anything, "ghost@b.c").Return(model.User{}, model.ErrNotFound)

		require.NoError(t, a.RequestPasswordReset(context.Background(), "ghost@b.c"))
	})

	t.Run("code is stored and mailed", func(t *testing.T) {
		a, deps := newTestAuth(t)
		userID := uuid.New()
		var stored string

		deps.users.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{ID: userID, Email: "a@b.c"}, nil)
		deps.codes.On("CreatePasswordResetToken", mock.Anything, mock.MatchedBy(func(c model.VerificationCode) bool {
			stored = c.Code
			return c.UserID == userID && c.ExpiresAt.Equal(fixedNow.Add(model.PasswordResetTokenTTL))
		})).Return(nil)
		deps.mailer.On("SendCode", mock.Anything, "a@b.c", purposePasswordReset, mock.MatchedBy(func(code string) bool {
			return code == stored
		})).Return(nil)

		require.NoError(t, a.RequestPasswordReset(context.Background(), "a@b.c"))
	})
}

func TestAuth_ResetPassword(t *testing.T) {
	a, deps := newTestAuth(t)
	userID := uuid.New()

	deps.users.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{ID: userID, Email: "a@b.c"}, nil)
	deps.codes.On("ConsumePasswordResetToken", mock.Anything, userID, "111111").Return(model.ErrNotFound).Once()

	err := a.ResetPassword(context.Background(), "a@b.c", "111111", "newpassword")
	assertAPIError(t, err, http.StatusBadRequest)

	deps.codes.On("ConsumePasswordResetToken", mock.Anything, userID, "222222").Return(nil).Once()
	deps.users.On("UpdatePassword", mock.Anything, userID, mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword")) == nil
	})).Return(model.User{ID: userID}, nil)

	require.NoError(t, a.ResetPassword(context.Background(), "a@b.c", "222222", "newpassword"))
}

func TestAuth_ResetPassword_ShortPassword(t *testing.T) {
	a, _ := newTestAuth(t)

	err := a.ResetPassword(context.Background(), "a@b.c", "222222", "short")
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestAuth_RequestOneTimePassword(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		a, _ := newTestAuth(t)
		err := a.RequestOneTimePassword(context.Background(), "a@b.c", "MAGIC")
		assertAPIError(t, err, http.StatusBadRequest)
	})

	t.Run("login code", func(t *testing.T) {
		a, deps := newTestAuth(t)
		userID := uuid.New()

		deps.users.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{ID: userID, Email: "a@b.c"}, nil)
		deps.codes.On("CreateOneTimePassword", mock.Anything, mock.MatchedBy(func(otp model.OneTimePassword) bool {
			return otp.UserID == userID && otp.Identifier == "a@b.c" && otp.Type == model.OneTimePasswordLogin &&
				otp.ExpiresAt.Equal(fixedNow.Add(model.OneTimePasswordTTL))
		})).Return(nil)
		deps.mailer.On("SendCode", mock.Anything, "a@b.c", "otp-login", mock.AnythingOfType("string")).Return(nil)

		require.NoError(t, a.RequestOneTimePassword(context.Background(), "a@b.c", model.OneTimePasswordLogin))
	})
}

func TestAuth_LoginWithOneTimePassword(t *testing.T) {
	a, deps := newTestAuth(t)
	userID := uuid.New()

	deps.codes.On("ConsumeOneTimePassword", mock.Anything, "a@b.c", "654321", model.OneTimePasswordLogin).
		Return(model.OneTimePassword{UserID: userID, Identifier: "a@b.c"}, nil)
	deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, Email: "a@b.c"}, nil)
	deps.users.On("Verify", mock.Anything, userID).Return(model.User{ID: userID, Email: "a@b.c", EmailVerified: true}, nil)
	deps.users.On("UpdateLastActive", mock.Anything, userID).Return(model.User{ID: userID, Email: "a@b.c", EmailVerified: true}, nil)

	user, err := a.LoginWithOneTimePassword(context.Background(), "a@b.c", "654321")
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
}

func TestAuth_LoginWithOneTimePassword_InvalidCode(t *testing.T) {
	a, deps := newTestAuth(t)

	deps.codes.On("ConsumeOneTimePassword", mock.Anything, "a@b.c", "000000", model.OneTimePasswordLogin).
		Return(model.OneTimePassword{}, model.ErrNotFound)

	_, err := a.LoginWithOneTimePassword(context.Background(), "a@b.c", "000000")
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestAuth_SignInWithOAuth_ExistingLink(t *testing.T) {
	a, deps := newTestAuth(t)
	userID := uuid.New()

	deps.oauth.On("FindByProvider", mock.Anything, "github", "42").Return(model.OAuthAccount{UserID: userID}, nil)
	deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)
	deps.users.On("UpdateLastActive", mock.Anything, userID).Return(model.User{ID: userID}, nil)

	user, err := a.SignInWithOAuth(context.Background(), model.OAuthProfile{ProviderID: "github", ProviderUserID: "42"})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestAuth_SignInWithOAuth_FirstSignIn(t *testing.T) {
	a, deps := newTestAuth(t)
	userID := uuid.New()
	avatar := "https://img.example.com/a.png"

	deps.oauth.On("FindByProvider", mock.Anything, "github", "42").Return(model.OAuthAccount{}, model.ErrNotFound)
	deps.users.On("UpsertWithOAuth", mock.Anything, model.NewUser{Email: "a@b.c", Name: "a@b.c", AvatarURL: &avatar}).
		Return(model.User{ID: userID, Email: "a@b.c", EmailVerified: true}, nil)
	deps.oauth.On("Create", mock.Anything, model.OAuthAccount{ProviderID: "github", ProviderUserID: "42", UserID: userID}).
		Return(model.OAuthAccount{}, model.ErrConflict)
	deps.users.On("UpdateLastActive", mock.Anything, userID).Return(model.User{ID: userID, Email: "a@b.c", EmailVerified: true}, nil)

	user, err := a.SignInWithOAuth(context.Background(), model.OAuthProfile{
		ProviderID: "github", ProviderUserID: "42", Email: "a@b.c", AvatarURL: avatar,
	})
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
}

func TestAuth_SignInWithOAuth_StoreFailure(t *testing.T) {
	a, deps := newTestAuth(t)

	deps.oauth.On("FindByProvider", mock.Anything, "github", "42").Return(model.OAuthAccount{}, errors.New("db down"))

	_, err := a.SignInWithOAuth(context.Background(), model.OAuthProfile{ProviderID: "github", ProviderUserID: "42"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
