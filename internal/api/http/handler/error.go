package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/accounts-server/internal/apierror"
	"github.com/dtroode/accounts-server/internal/model"
)

func handleError(err error) *apierror.APIError {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return apierror.New(http.StatusNotFound, "not found")
	default:
		return apierror.NewErrInternalServerError(err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	apierror.Write(w, handleError(err))
}
