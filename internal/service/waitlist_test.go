package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts-server/internal/mocks"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/testutil"
)

func TestWaitlist_Join(t *testing.T) {
	store := mocks.NewWaitlistStore(t)
	s := NewWaitlist(store, testutil.MakeNoopLogger())
	referrer := "twitter"

	store.On("Join", context.Background(), model.WaitlistEntry{Email: "alice@example.com", Referrer: &referrer}).
		Return(model.WaitlistEntry{Email: "alice@example.com", Referrer: &referrer}, nil)

	entry, err := s.Join(context.Background(), " Alice@Example.com ", " twitter ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", entry.Email)
}

func TestWaitlist_Join_InvalidEmail(t *testing.T) {
	s := NewWaitlist(mocks.NewWaitlistStore(t), testutil.MakeNoopLogger())

	_, err := s.Join(context.Background(), "not-an-email", "")
	assertAPIError(t, err, http.StatusBadRequest)
}
