package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rhuss/mathsolver/pkg/api"
)

// HTTPStatusFromError maps an error to the corresponding HTTP status code.
// Errors that are not an *api.APIError are server errors.
func HTTPStatusFromError(err error) int {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Type {
	case api.ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	case api.ErrorTypeNotFound:
		return http.StatusNotFound
	case api.ErrorTypePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// PublicError returns the *api.APIError to show the client for err. Server
// errors always become the generic failure message.
func PublicError(err error) *api.APIError {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && HTTPStatusFromError(apiErr) < 500 {
		return apiErr
	}
	return api.NewServerError()
}

// WriteErrorResponse writes the flat {"error": message} body with the given
// status code.
func WriteErrorResponse(w http.ResponseWriter, apiErr *api.APIError, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(apiErr.Response())
}

// WriteError writes err as an error response, deriving the status code
// from the error and hiding internal details.
func WriteError(w http.ResponseWriter, err error) {
	apiErr := PublicError(err)
	WriteErrorResponse(w, apiErr, HTTPStatusFromError(apiErr))
}
