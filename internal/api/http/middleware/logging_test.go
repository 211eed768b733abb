package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	lg := NewLogging(testutil.MakeNoopLogger())

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode int
	}{
		{
			name:     "implicit ok",
			handler:  func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) },
			wantCode: http.StatusOK,
		},
		{
			name:     "client error propagates",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadRequest) },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "server error propagates",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			lg.Handle(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestLogging_Handle_LogsStatus(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogging(logger.NewWithWriter(&buf, 0, "json"))

	h := lg.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/posts", nil))

	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP request completed"`)
	assert.Contains(t, out, `"path":"/api/posts"`)
	assert.Contains(t, out, `"status":418`)
	assert.NotContains(t, out, "HTTP request failed")
}
