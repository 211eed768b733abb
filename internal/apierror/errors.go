// Package apierror defines errors that carry an HTTP status and a message
// safe to show to clients.
package apierror

import (
	"fmt"
	"net/http"
)

// APIError is a client-facing error.
type APIError struct {
	HTTPCode int
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// New creates an APIError with the given status and message.
func New(code int, message string) *APIError {
	return &APIError{HTTPCode: code, Message: message}
}

func NewErrInvalidInput(message string) *APIError {
	return New(http.StatusBadRequest, message)
}

func NewErrChallengeNotFound() *APIError {
	return New(http.StatusBadRequest, "Challenge not found or expired")
}

func NewErrEmailMismatch() *APIError {
	return New(http.StatusBadRequest, "Email not matching current session")
}

func NewErrUserNotFound() *APIError {
	return New(http.StatusNotFound, "User not found")
}

func NewErrCredentialNotFound() *APIError {
	return New(http.StatusNotFound, "Credential not found")
}

func NewErrNotFound(what string) *APIError {
	return New(http.StatusNotFound, what+" not found")
}

func NewErrEmailIsTaken(email string) *APIError {
	return New(http.StatusConflict, fmt.Sprintf("email %s is already taken", email))
}

func NewErrUnauthorized() *APIError {
	return New(http.StatusUnauthorized, "Unauthorized")
}

func NewErrInvalidCredentials() *APIError {
	return New(http.StatusUnauthorized, "Invalid email or password")
}

func NewErrInvalidCode() *APIError {
	return New(http.StatusBadRequest, "Invalid or expired code")
}

func NewErrBanned(reason string) *APIError {
	if reason == "" {
		return New(http.StatusForbidden, "Account is banned")
	}
	return New(http.StatusForbidden, "Account is banned: "+reason)
}

func NewErrFileTooLarge(limit string) *APIError {
	return New(http.StatusBadRequest, "File size must not exceed "+limit)
}

func NewErrUnsupportedFileType(contentType string) *APIError {
	return New(http.StatusBadRequest, fmt.Sprintf("File type %s is not supported", contentType))
}

// NewErrInternalServerError hides err from clients but keeps it for logs.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{HTTPCode: http.StatusInternalServerError, Message: "internal server error", Err: err}
}
