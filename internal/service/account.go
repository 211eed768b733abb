package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

// Account manages the profile, subscription and linked accounts of a signed-in user.
type Account struct {
	userStore         model.UserStore
	subscriptionStore model.SubscriptionStore
	oauthStore        model.OAuthAccountStore
	logger            *logger.Logger
	bcryptCost        int
}

func NewAccount(
	userStore model.UserStore,
	subscriptionStore model.SubscriptionStore,
	oauthStore model.OAuthAccountStore,
	logger *logger.Logger,
) *Account {
	return &Account{
		userStore:         userStore,
		subscriptionStore: subscriptionStore,
		oauthStore:        oauthStore,
		logger:            logger,
		bcryptCost:        bcrypt.DefaultCost,
	}
}

func (a *Account) Get(ctx context.Context, userID uuid.UUID) (model.SessionUser, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.SessionUser{}, userError(err, "failed to get user by id")
	}
	return model.Sanitize(user), nil
}

// Update changes the profile fields that are set in update.
func (a *Account) Update(ctx context.Context, userID uuid.UUID, update model.UserUpdate) (model.SessionUser, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return model.SessionUser{}, apierror.NewErrInvalidInput("name must not be empty")
		}
		update.Name = &name
	}
	if update.AvatarURL != nil && *update.AvatarURL != "" {
		u, err := url.Parse(*update.AvatarURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return model.SessionUser{}, apierror.NewErrInvalidInput("avatarUrl must be an http(s) URL")
		}
	}

	user, err := a.userStore.Update(ctx, userID, update)
	if err != nil {
		return model.SessionUser{}, userError(err, "failed to update user")
	}
	return model.Sanitize(user), nil
}

// ChangePassword sets a new password. An existing password must be confirmed;
// accounts created through passkeys or OAuth may set their first one.
func (a *Account) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		return userError(err, "failed to get user by id")
	}

	if user.HashedPassword != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(current)); err != nil {
			return apierror.New(http.StatusUnauthorized, "Current password is incorrect")
		}
	}

	hash, err := hashPassword(next, a.bcryptCost)
	if err != nil {
		return err
	}

	if _, err := a.userStore.UpdatePassword(ctx, userID, hash); err != nil {
		return userError(err, "failed to update password")
	}

	a.logger.Info("Account service: password changed",
		"user_id", userID)
	return nil
}

// Delete removes the account together with everything it owns.
func (a *Account) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := a.userStore.Delete(ctx, userID); err != nil {
		return userError(err, "failed to delete user")
	}

	a.logger.Info("Account service: user deleted",
		"user_id", userID)
	return nil
}

func (a *Account) Subscription(ctx context.Context, userID uuid.UUID) (model.Subscription, error) {
	sub, err := a.subscriptionStore.FindByUserID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Subscription{}, apierror.NewErrNotFound("Subscription")
	}
	if err != nil {
		return model.Subscription{}, fmt.Errorf("failed to find subscription: %w", err)
	}
	return sub, nil
}

// CustomerID returns the payment provider customer of the user.
func (a *Account) CustomerID(ctx context.Context, userID uuid.UUID) (string, error) {
	customerID, err := a.subscriptionStore.FindCustomerIDByUserID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return "", apierror.NewErrNotFound("Customer")
	}
	if err != nil {
		return "", fmt.Errorf("failed to find customer: %w", err)
	}
	return customerID, nil
}

// SaveCustomerID records the payment provider customer of the user.
func (a *Account) SaveCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error {
	if customerID == "" {
		return apierror.NewErrInvalidInput("customerId is required")
	}
	if err := a.subscriptionStore.SaveCustomerID(ctx, userID, customerID); err != nil {
		return fmt.Errorf("failed to save customer id: %w", err)
	}
	return nil
}

func (a *Account) LinkedAccounts(ctx context.Context, userID uuid.UUID) ([]model.OAuthAccount, error) {
	accounts, err := a.oauthStore.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked accounts: %w", err)
	}
	return accounts, nil
}

func (a *Account) UnlinkAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	removed, err := a.oauthStore.Unlink(ctx, userID, accountID)
	if err != nil {
		return fmt.Errorf("failed to unlink account: %w", err)
	}
	if !removed {
		return apierror.NewErrNotFound("Linked account")
	}
	return nil
}

func userError(err error, msg string) error {
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrUserNotFound()
	}
	return fmt.Errorf("%s: %w", msg, err)
}
