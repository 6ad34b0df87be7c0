package transport

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/rhuss/mathsolver/pkg/api"
)

func okSolver(provider string) QuestionSolverFunc {
	return func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		return &api.SolveResponse{Result: "42", Provider: provider}, nil
	}
}

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	var order []string

	mw := func(name string) Middleware {
		return func(next QuestionSolver) QuestionSolver {
			return QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
				order = append(order, name+":before")
				resp, err := next.SolveQuestion(ctx, req)
				order = append(order, name+":after")
				return resp, err
			})
		}
	}

	handler := QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		order = append(order, "handler")
		return &api.SolveResponse{}, nil
	})

	wrapped := Chain(mw("first"), mw("second"), mw("third"))(handler)
	wrapped.SolveQuestion(context.Background(), &api.SolveRequest{Question: "q"})

	expected := []string{
		"first:before", "second:before", "third:before",
		"handler",
		"third:after", "second:after", "first:after",
	}

	if len(order) != len(expected) {
		t.Fatalf("execution order length = %d, want %d: %v", len(order), len(expected), order)
	}
	for i, got := range order {
		if got != expected[i] {
			t.Errorf("order[%d] = %q, want %q", i, got, expected[i])
		}
	}
}

func TestRecoveryCatchesPanic(t *testing.T) {
	handler := QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		panic("test panic")
	})

	resp, err := Recovery()(handler).SolveQuestion(context.Background(), &api.SolveRequest{Question: "q"})

	if err == nil {
		t.Fatal("expected error after panic, got nil")
	}
	if resp != nil {
		t.Errorf("expected nil response after panic, got %+v", resp)
	}

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.APIError, got %T: %v", err, err)
	}
	if apiErr.Type != api.ErrorTypeServerError {
		t.Errorf("error type = %q, want %q", apiErr.Type, api.ErrorTypeServerError)
	}
	if strings.Contains(apiErr.Message, "test panic") {
		t.Errorf("panic value leaked into client message: %q", apiErr.Message)
	}
}

func TestRecoveryPassesThroughNormalExecution(t *testing.T) {
	resp, err := Recovery()(okSolver("p")).SolveQuestion(context.Background(), &api.SolveRequest{Question: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Result != "42" {
		t.Errorf("result = %q, want 42", resp.Result)
	}
}

func TestRequestIDGeneratesNewID(t *testing.T) {
	var capturedID string

	handler := QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		capturedID = RequestIDFromContext(ctx)
		return &api.SolveResponse{}, nil
	})

	RequestID()(handler).SolveQuestion(context.Background(), &api.SolveRequest{})

	if capturedID == "" {
		t.Fatal("expected a generated request ID, got empty string")
	}
	parsed, err := uuid.Parse(capturedID)
	if err != nil {
		t.Fatalf("request ID %q is not a UUID: %v", capturedID, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("request ID version = %d, want 4", parsed.Version())
	}
}

func TestRequestIDPropagatesExisting(t *testing.T) {
	var capturedID string

	handler := QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		capturedID = RequestIDFromContext(ctx)
		return &api.SolveResponse{}, nil
	})

	ctx := ContextWithRequestID(context.Background(), "existing-id-123")
	RequestID()(handler).SolveQuestion(ctx, &api.SolveRequest{})

	if capturedID != "existing-id-123" {
		t.Errorf("request ID = %q, want %q", capturedID, "existing-id-123")
	}
}

func TestRequestIDUniqueness(t *testing.T) {
	ids := make(map[string]bool)
	handler := QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		ids[RequestIDFromContext(ctx)] = true
		return &api.SolveResponse{}, nil
	})

	wrapped := RequestID()(handler)
	for i := 0; i < 100; i++ {
		wrapped.SolveQuestion(context.Background(), &api.SolveRequest{})
	}

	if len(ids) != 100 {
		t.Errorf("expected 100 unique IDs, got %d", len(ids))
	}
}

func TestLoggingEmitsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx := ContextWithRequestID(context.Background(), "req-log-test")
	Logging(logger)(okSolver("wolframalpha")).SolveQuestion(ctx, &api.SolveRequest{Question: "secret 2+2"})

	output := buf.String()
	for _, expected := range []string{"request_id=req-log-test", "question_length=10", "provider=wolframalpha", "solve completed"} {
		if !strings.Contains(output, expected) {
			t.Errorf("log output missing %q in:\n%s", expected, output)
		}
	}
	if strings.Contains(output, "secret 2+2") {
		t.Errorf("question text must not be logged:\n%s", output)
	}
}

func TestLoggingEmitsErrorOnFailure(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"client error", api.NewNoQuestionError(), "level=WARN"},
		{"server error", errors.New("all providers failed"), "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			handler := QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
				return nil, tt.err
			})
			Logging(logger)(handler).SolveQuestion(context.Background(), &api.SolveRequest{})

			output := buf.String()
			if !strings.Contains(output, "solve failed") {
				t.Errorf("log output missing 'solve failed' in:\n%s", output)
			}
			if !strings.Contains(output, tt.wantLevel) {
				t.Errorf("log output missing %s in:\n%s", tt.wantLevel, output)
			}
		})
	}
}

func TestDefaultChain(t *testing.T) {
	var capturedID string
	handler := QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		capturedID = RequestIDFromContext(ctx)
		panic("boom")
	})

	_, err := Default()(handler).SolveQuestion(context.Background(), &api.SolveRequest{Question: "q"})
	if HTTPStatusFromError(err) != 500 {
		t.Errorf("status = %d, want 500", HTTPStatusFromError(err))
	}
	if capturedID == "" {
		t.Error("request ID not assigned inside the default chain")
	}
}
