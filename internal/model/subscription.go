package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the billing state reported by the payment provider.
type SubscriptionStatus string

const (
	SubscriptionStatusTrialing SubscriptionStatus = "TRIALING"
	SubscriptionStatusActive   SubscriptionStatus = "ACTIVE"
	SubscriptionStatusPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionStatusPaused   SubscriptionStatus = "PAUSED"
	SubscriptionStatusCanceled SubscriptionStatus = "CANCELED"
	SubscriptionStatusExpired  SubscriptionStatus = "EXPIRED"
	SubscriptionStatusUnpaid   SubscriptionStatus = "UNPAID"
)

// SubscriptionStore defines persistence operations for subscriptions.
type SubscriptionStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (Subscription, error)
	FindCustomerIDByUserID(ctx context.Context, userID uuid.UUID) (string, error)
	SaveCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error
}

// Subscription is a user's billing record.
type Subscription struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"userId"`
	CustomerID      string             `json:"customerId"`
	Status          SubscriptionStatus `json:"status"`
	PlanID          string             `json:"planId"`
	VariantID       string             `json:"variantId"`
	PaymentProvider string             `json:"paymentProvider"`
	NextPaymentDate time.Time          `json:"nextPaymentDate"`
}
