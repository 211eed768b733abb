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

func TestPost_Create(t *testing.T) {
	t.Parallel()

	service := mocks.NewPostService(t)
	h := NewPost(service, httpcontext.NewManager(), testutil.MakeNoopLogger())
	user := model.SessionUser{ID: uuid.New()}
	service.On("Create", mock.Anything, user.ID, "Hello", "World").Return(model.Post{Title: "Hello", Content: "World"}, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, withUser(jsonRequest(t, http.MethodPost, "/api/posts",
		map[string]string{"title": "Hello", "content": "World"}), user))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Hello"`)
}

func TestPost_List_Empty(t *testing.T) {
	t.Parallel()

	service := mocks.NewPostService(t)
	h := NewPost(service, httpcontext.NewManager(), testutil.MakeNoopLogger())
	user := model.SessionUser{ID: uuid.New()}
	service.On("List", mock.Anything, user.ID).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.List(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/posts", nil), user))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPost_Delete_NotOwned(t *testing.T) {
	t.Parallel()

	service := mocks.NewPostService(t)
	h := NewPost(service, httpcontext.NewManager(), testutil.MakeNoopLogger())
	user := model.SessionUser{ID: uuid.New()}
	postID := uuid.New()
	service.On("Delete", mock.Anything, user.ID, postID).Return(apierror.NewErrNotFound("Post"))

	req := mux.SetURLVars(withUser(httptest.NewRequest(http.MethodDelete, "/api/posts/"+postID.String(), nil), user),
		map[string]string{"id": postID.String()})

	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPost_RequiresSession(t *testing.T) {
	t.Parallel()

	h := NewPost(mocks.NewPostService(t), httpcontext.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
