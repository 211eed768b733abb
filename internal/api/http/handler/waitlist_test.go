package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/mocks"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/testutil"
)

func TestWaitlist_Join(t *testing.T) {
	t.Parallel()

	service := mocks.NewWaitlistService(t)
	h := NewWaitlist(service, testutil.MakeNoopLogger())
	service.On("Join", mock.Anything, "a@b.c", "newsletter").Return(model.WaitlistEntry{Email: "a@b.c"}, nil)
	service.On("Join", mock.Anything, "nope", "").Return(model.WaitlistEntry{}, apierror.NewErrInvalidInput("email must be a valid email address"))

	rec := httptest.NewRecorder()
	h.Join(rec, jsonRequest(t, http.MethodPost, "/api/waitlist",
		map[string]string{"email": "a@b.c", "referrer": "newsletter"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"a@b.c"`)

	rec = httptest.NewRecorder()
	h.Join(rec, jsonRequest(t, http.MethodPost, "/api/waitlist", map[string]string{"email": "nope"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
