package transport

import (
	"context"

	"github.com/rhuss/mathsolver/pkg/api"
)

// QuestionSolver handles the solve operation. Implementations return an
// *api.APIError for client mistakes; any other error is reported to the
// client as the generic failure message.
type QuestionSolver interface {
	SolveQuestion(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error)
}

// QuestionSolverFunc is an adapter that allows using an ordinary function
// as a QuestionSolver.
type QuestionSolverFunc func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error)

// SolveQuestion calls f(ctx, req).
func (f QuestionSolverFunc) SolveQuestion(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
	return f(ctx, req)
}
