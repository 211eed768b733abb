package apierror

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON body of every error the API returns.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Write renders e as a Response with e's status code.
func Write(w http.ResponseWriter, e *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.HTTPCode)
	_ = json.NewEncoder(w).Encode(Response{StatusCode: e.HTTPCode, Message: e.Message})
}
