package transport

import (
	"context"
	"log/slog"
	"time"

	"github.com/rhuss/mathsolver/pkg/api"
)

// Logging returns middleware that emits one structured log entry per solve
// with the request ID, question length, answering provider and duration.
// The question text itself is not logged.
func Logging(logger *slog.Logger) Middleware {
	return func(next QuestionSolver) QuestionSolver {
		return QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
			l := logger
			if l == nil {
				l = slog.Default()
			}
			start := time.Now()

			resp, err := next.SolveQuestion(ctx, req)

			attrs := []slog.Attr{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.Int("question_length", questionLength(req)),
				slog.Duration("duration", time.Since(start)),
			}

			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				l.LogAttrs(ctx, levelForError(err), "solve failed", attrs...)
			} else {
				attrs = append(attrs, slog.String("provider", resp.Provider))
				l.LogAttrs(ctx, slog.LevelInfo, "solve completed", attrs...)
			}

			return resp, err
		})
	}
}

func questionLength(req *api.SolveRequest) int {
	if req == nil {
		return 0
	}
	return len(req.Question)
}

// levelForError logs client mistakes at WARN and everything else at ERROR.
func levelForError(err error) slog.Level {
	if HTTPStatusFromError(err) < 500 {
		return slog.LevelWarn
	}
	return slog.LevelError
}
