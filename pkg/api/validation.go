package api

import "strings"

// ValidateSolveRequest checks that req carries a non-blank question. It
// returns an *APIError describing the failure, or nil if the request is valid.
func ValidateSolveRequest(req *SolveRequest) *APIError {
	if req == nil || strings.TrimSpace(req.Question) == "" {
		return NewNoQuestionError()
	}
	return nil
}
