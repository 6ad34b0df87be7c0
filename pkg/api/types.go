package api

// SolveRequest is the body of POST /api/solve.
type SolveRequest struct {
	Question string `json:"question"`
}

// SolveResponse is returned when a provider solved the question.
type SolveResponse struct {
	Result   string `json:"result"`
	Provider string `json:"provider,omitempty"`
}

// ErrorResponse is the wire form of every error: {"error": message}.
type ErrorResponse struct {
	Error string `json:"error"`
}
