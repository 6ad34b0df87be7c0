package transport

import (
	"context"
	"errors"
	"testing"

	"github.com/rhuss/mathsolver/pkg/api"
)

func TestQuestionSolverFuncAdapter(t *testing.T) {
	var received *api.SolveRequest

	f := QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		received = req
		return &api.SolveResponse{Result: "4", Provider: "p"}, nil
	})

	req := &api.SolveRequest{Question: "2+2"}
	resp, err := f.SolveQuestion(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received != req {
		t.Error("request not forwarded")
	}
	if resp.Result != "4" || resp.Provider != "p" {
		t.Errorf("response = %+v", resp)
	}
}

func TestQuestionSolverFuncReturnsError(t *testing.T) {
	want := errors.New("exhausted")
	f := QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		return nil, want
	})

	if _, err := f.SolveQuestion(context.Background(), &api.SolveRequest{}); !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
}

func TestInterfaceSatisfaction(t *testing.T) {
	var _ QuestionSolver = QuestionSolverFunc(nil)
}
