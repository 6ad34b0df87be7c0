package transport

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/rhuss/mathsolver/pkg/api"
)

// Recovery returns middleware that catches panics in the solver and
// converts them to the generic server error. The server continues to
// accept new requests after a panic is recovered.
func Recovery() Middleware {
	return func(next QuestionSolver) QuestionSolver {
		return QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (resp *api.SolveResponse, retErr error) {
			defer func() {
				if r := recover(); r != nil {
					slog.ErrorContext(ctx, "panic while solving",
						"request_id", RequestIDFromContext(ctx),
						"panic", r,
						"stack", string(debug.Stack()),
					)
					resp = nil
					retErr = api.NewServerError()
				}
			}()
			return next.SolveQuestion(ctx, req)
		})
	}
}
