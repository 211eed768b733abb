package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Write(rec, NewErrInvalidCode())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, Response{StatusCode: http.StatusBadRequest, Message: "Invalid or expired code"}, body)
}

func TestWrite_HidesInternalCause(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Write(rec, NewErrInternalServerError(assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"statusCode":500,"message":"internal server error"}`, rec.Body.String())
}
