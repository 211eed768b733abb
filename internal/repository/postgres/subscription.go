package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/accounts-server/internal/model"
)

var _ model.SubscriptionStore = (*SubscriptionRepository)(nil)

type SubscriptionRepository struct {
	db *Connection
}

func NewSubscriptionRepository(db *Connection) *SubscriptionRepository {
	return &SubscriptionRepository{
		db: db,
	}
}

func (r *SubscriptionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (model.Subscription, error) {
	const query = `
		SELECT id, user_id, customer_id, status, plan_id, variant_id, payment_provider, next_payment_date
		FROM subscriptions
		WHERE user_id = $1`

	var s model.Subscription
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.CustomerID, &s.Status, &s.PlanID, &s.VariantID,
		&s.PaymentProvider, &s.NextPaymentDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Subscription{}, model.ErrNotFound
		}
		return model.Subscription{}, fmt.Errorf("failed to find subscription by user id: %w", err)
	}

	return s, nil
}

func (r *SubscriptionRepository) FindCustomerIDByUserID(ctx context.Context, userID uuid.UUID) (string, error) {
	const query = `SELECT customer_id FROM subscriptions WHERE user_id = $1`

	var customerID string
	if err := r.db.QueryRow(ctx, query, userID).Scan(&customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to find customer by user id: %w", err)
	}

	return customerID, nil
}

func (r *SubscriptionRepository) SaveCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error {
	const query = `
		INSERT INTO subscriptions (id, user_id, customer_id, status, plan_id, variant_id, payment_provider, next_payment_date)
		VALUES ($1, $2, $3, $4, '', '', '', $5)
		ON CONFLICT (user_id) DO UPDATE SET customer_id = EXCLUDED.customer_id`

	if _, err := r.db.Exec(ctx, query,
		uuid.New(), userID, customerID, model.SubscriptionStatusTrialing, time.Now(),
	); err != nil {
		return fmt.Errorf("failed to save customer id: %w", err)
	}

	return nil
}
