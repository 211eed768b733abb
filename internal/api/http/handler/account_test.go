package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/accounts-server/internal/api/http/context"
	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/mocks"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/testutil"
)

func newAccountHandler(t *testing.T) (*Account, *mocks.AccountService, *mocks.SessionManager) {
	service := mocks.NewAccountService(t)
	sessions, manager := newSessions(t)
	return NewAccount(service, sessions, httpcontext.NewManager(), testutil.MakeNoopLogger()), service, manager
}

func TestAccount_RequiresSession(t *testing.T) {
	t.Parallel()

	h, _, _ := newAccountHandler(t)

	handlers := map[string]http.HandlerFunc{
		"get":             h.Get,
		"update":          h.Update,
		"change password": h.ChangePassword,
		"delete":          h.Delete,
		"subscription":    h.Subscription,
		"linked accounts": h.LinkedAccounts,
		"unlink":          h.UnlinkAccount,
	}

	for name, handle := range handlers {
		rec := httptest.NewRecorder()
		handle(rec, httptest.NewRequest(http.MethodGet, "/api/user", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}

func TestAccount_Update_RefreshesSession(t *testing.T) {
	t.Parallel()

	h, service, manager := newAccountHandler(t)
	session := model.SessionUser{ID: uuid.New(), Name: "Old"}
	updated := model.SessionUser{ID: session.ID, Name: "New", Onboarded: true}
	service.On("Update", mock.Anything, session.ID, mock.MatchedBy(func(u model.UserUpdate) bool {
		return u.Name != nil && *u.Name == "New" && u.Onboarded != nil && *u.Onboarded && u.AvatarURL == nil
	})).Return(updated, nil)
	manager.On("Issue", updated).Return("fresh-token", nil)

	rec := httptest.NewRecorder()
	h.Update(rec, withUser(jsonRequest(t, http.MethodPatch, "/api/user",
		map[string]any{"name": "New", "onboarded": true}), session))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fresh-token", findCookie(rec, testCookieName).Value)
	assert.Contains(t, rec.Body.String(), `"name":"New"`)
}

func TestAccount_ChangePassword(t *testing.T) {
	t.Parallel()

	h, service, _ := newAccountHandler(t)
	session := model.SessionUser{ID: uuid.New()}
	service.On("ChangePassword", mock.Anything, session.ID, "old-password", "new-password").
		Return(apierror.New(http.StatusUnauthorized, "Current password is incorrect"))

	rec := httptest.NewRecorder()
	h.ChangePassword(rec, withUser(jsonRequest(t, http.MethodPut, "/api/user/password",
		map[string]string{"currentPassword": "old-password", "newPassword": "new-password"}), session))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccount_Delete_ClearsSession(t *testing.T) {
	t.Parallel()

	h, service, _ := newAccountHandler(t)
	session := model.SessionUser{ID: uuid.New()}
	service.On("Delete", mock.Anything, session.ID).Return(nil)

	rec := httptest.NewRecorder()
	h.Delete(rec, withUser(httptest.NewRequest(http.MethodDelete, "/api/user", nil), session))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, findCookie(rec, testCookieName).MaxAge)
}

func TestAccount_Subscription_NotFound(t *testing.T) {
	t.Parallel()

	h, service, _ := newAccountHandler(t)
	session := model.SessionUser{ID: uuid.New()}
	service.On("Subscription", mock.Anything, session.ID).Return(model.Subscription{}, apierror.NewErrNotFound("Subscription"))

	rec := httptest.NewRecorder()
	h.Subscription(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/user/subscription", nil), session))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"statusCode":404,"message":"Subscription not found"}`, rec.Body.String())
}

func TestAccount_LinkedAccounts_Empty(t *testing.T) {
	t.Parallel()

	h, service, _ := newAccountHandler(t)
	session := model.SessionUser{ID: uuid.New()}
	service.On("LinkedAccounts", mock.Anything, session.ID).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.LinkedAccounts(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/user/linked-accounts", nil), session))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAccount_UnlinkAccount(t *testing.T) {
	t.Parallel()

	h, service, _ := newAccountHandler(t)
	session := model.SessionUser{ID: uuid.New()}
	accountID := uuid.New()
	service.On("UnlinkAccount", mock.Anything, session.ID, accountID).Return(nil)

	req := withUser(httptest.NewRequest(http.MethodDelete, "/api/user/linked-accounts/"+accountID.String(), nil), session)
	req = mux.SetURLVars(req, map[string]string{"id": accountID.String()})

	rec := httptest.NewRecorder()
	h.UnlinkAccount(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	bad := mux.SetURLVars(withUser(httptest.NewRequest(http.MethodDelete, "/api/user/linked-accounts/x", nil), session),
		map[string]string{"id": "x"})
	rec = httptest.NewRecorder()
	h.UnlinkAccount(rec, bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
