package transport

import (
	"context"

	"github.com/google/uuid"

	"github.com/rhuss/mathsolver/pkg/api"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID returns middleware that assigns a unique request ID to each
// request. If the incoming context already carries a request ID (set by
// the HTTP adapter from the X-Request-ID header), that value is used.
// Otherwise, a new UUID is generated.
func RequestID() Middleware {
	return func(next QuestionSolver) QuestionSolver {
		return QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
			if RequestIDFromContext(ctx) == "" {
				ctx = ContextWithRequestID(ctx, NewRequestID())
			}
			return next.SolveQuestion(ctx, req)
		})
	}
}

// NewRequestID returns a random (version 4) UUID string.
func NewRequestID() string {
	return uuid.NewString()
}
