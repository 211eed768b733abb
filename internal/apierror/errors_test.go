package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		wantCode int
		wantMsg  string
	}{
		{name: "challenge", err: NewErrChallengeNotFound(), wantCode: http.StatusBadRequest, wantMsg: "Challenge not found or expired"},
		{name: "user", err: NewErrUserNotFound(), wantCode: http.StatusNotFound, wantMsg: "User not found"},
		{name: "credential", err: NewErrCredentialNotFound(), wantCode: http.StatusNotFound, wantMsg: "Credential not found"},
		{name: "taken", err: NewErrEmailIsTaken("a@b.c"), wantCode: http.StatusConflict, wantMsg: "email a@b.c is already taken"},
		{name: "banned", err: NewErrBanned("spam"), wantCode: http.StatusForbidden, wantMsg: "Account is banned: spam"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCode, tt.err.HTTPCode)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestNewErrInternalServerError_Unwrap(t *testing.T) {
	cause := errors.New("db down")
	err := NewErrInternalServerError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal server error", err.Message)

	var apiErr *APIError
	assert.True(t, errors.As(error(err), &apiErr))
}
