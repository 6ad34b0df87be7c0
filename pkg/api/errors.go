package api

import "fmt"

// Client-visible messages.
const (
	// MsgNoQuestion is returned for a missing, unreadable or blank question.
	MsgNoQuestion = "No question provided"

	// MsgAllProvidersFailed is returned when no provider produced an answer
	// and for every unexpected server error. It never carries details.
	MsgAllProvidersFailed = "Sorry, all of our AI services are busy or could not solve this problem. Please try again later."
)

// ErrorType represents the category of an API error.
type ErrorType string

const (
	ErrorTypeServerError     ErrorType = "server_error"
	ErrorTypeInvalidRequest  ErrorType = "invalid_request"
	ErrorTypePayloadTooLarge ErrorType = "payload_too_large"
	ErrorTypeNotFound        ErrorType = "not_found"
)

// APIError represents a categorized error with an optional offending
// parameter. Only Message reaches the client.
type APIError struct {
	Type    ErrorType
	Param   string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: %s (param: %s)", e.Type, e.Message, e.Param)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Response returns the wire envelope for the error.
func (e *APIError) Response() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// NewInvalidRequestError creates an APIError for invalid request parameters.
func NewInvalidRequestError(param, message string) *APIError {
	return &APIError{
		Type:    ErrorTypeInvalidRequest,
		Param:   param,
		Message: message,
	}
}

// NewNoQuestionError creates the error returned for an absent question.
func NewNoQuestionError() *APIError {
	return NewInvalidRequestError("question", MsgNoQuestion)
}

// NewPayloadTooLargeError creates an APIError for oversized bodies.
func NewPayloadTooLargeError(limit int64) *APIError {
	return &APIError{
		Type:    ErrorTypePayloadTooLarge,
		Message: fmt.Sprintf("Request body exceeds %d bytes", limit),
	}
}

// NewNotFoundError creates an APIError for unknown routes.
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewServerError creates the generic server error. Internal details are
// never exposed.
func NewServerError() *APIError {
	return &APIError{
		Type:    ErrorTypeServerError,
		Message: MsgAllProvidersFailed,
	}
}
