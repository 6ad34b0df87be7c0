package engine

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rhuss/mathsolver/pkg/api"
	"github.com/rhuss/mathsolver/pkg/debug"
	"github.com/rhuss/mathsolver/pkg/observability"
	"github.com/rhuss/mathsolver/pkg/provider"
	"github.com/rhuss/mathsolver/pkg/transport"
)

// outcomeSuccess labels a successful attempt in metrics.
const outcomeSuccess = "success"

// Engine runs the fallback chain. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	providers []provider.Provider
	logger    *slog.Logger
	tracer    trace.Tracer
}

// Ensure Engine implements transport.QuestionSolver at compile time.
var _ transport.QuestionSolver = (*Engine)(nil)

// New creates an Engine over providers in the given order. The slice is
// copied; an empty chain is valid and fails every request.
func New(providers []provider.Provider, opts ...Option) *Engine {
	e := &Engine{
		providers: slices.Clone(providers),
		tracer:    observability.Tracer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Providers returns the provider names in chain order.
func (e *Engine) Providers() []string {
	names := make([]string, len(e.providers))
	for i, p := range e.providers {
		names[i] = p.Name()
	}
	return names
}

// Solve tries each provider in order and returns at the first success.
// Providers after the one that answered are not called.
func (e *Engine) Solve(ctx context.Context, question string) Outcome {
	ctx, span := e.tracer.Start(ctx, "engine.solve",
		trace.WithAttributes(attribute.Int("mathsolver.chain_length", len(e.providers))))
	defer span.End()

	var out Outcome
	for i, p := range e.providers {
		res := e.attempt(ctx, i, p, question)
		if res.OK() {
			out.Text = res.Text
			out.Provider = p.Name()
			out.solved = true
			span.SetAttributes(attribute.String("mathsolver.provider", out.Provider))
			e.log().InfoContext(ctx, "question solved",
				"provider", out.Provider,
				"attempt", i+1,
				"failed_before", len(out.Attempts),
			)
			return out
		}
		out.Attempts = append(out.Attempts, Attempt{Provider: p.Name(), Failure: *res.Failure})
	}

	span.SetStatus(codes.Error, "all providers failed")
	e.log().ErrorContext(ctx, "all providers failed", "attempts", len(out.Attempts))
	return out
}

// attempt calls p once and records logs, metrics and a span for the call.
func (e *Engine) attempt(ctx context.Context, i int, p provider.Provider, question string) provider.Result {
	name := p.Name()
	ctx, span := e.tracer.Start(ctx, "engine.attempt", trace.WithAttributes(
		attribute.String("mathsolver.provider", name),
		attribute.Int("mathsolver.attempt", i+1),
	))
	defer span.End()

	debug.Log("engine", "attempting provider", "provider", name, "attempt", i+1)

	start := time.Now()
	res := p.Attempt(ctx, question)
	observability.ProviderLatency.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if res.Failure == nil && strings.TrimSpace(res.Text) == "" {
		res = provider.EmptyResponse("provider returned neither text nor failure")
	}

	if res.OK() {
		observability.ProviderAttemptsTotal.WithLabelValues(name, outcomeSuccess).Inc()
		span.SetAttributes(attribute.String("mathsolver.outcome", outcomeSuccess))
		return res
	}

	reason := string(res.Failure.Kind)
	observability.ProviderAttemptsTotal.WithLabelValues(name, reason).Inc()
	span.SetAttributes(attribute.String("mathsolver.outcome", reason))
	if res.Failure.StatusCode != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", res.Failure.StatusCode))
	}
	span.SetStatus(codes.Error, reason)

	e.log().WarnContext(ctx, "provider failed",
		"provider", name,
		"attempt", i+1,
		"remaining", len(e.providers)-i-1,
		"reason", reason,
		"status", res.Failure.StatusCode,
	)
	return res
}

// SolveQuestion validates req and runs the chain. It returns an
// *api.APIError for a blank question and an *ExhaustedError when every
// provider failed.
func (e *Engine) SolveQuestion(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
	if apiErr := api.ValidateSolveRequest(req); apiErr != nil {
		observability.SolveOutcomesTotal.WithLabelValues(observability.OutcomeRejected).Inc()
		return nil, apiErr
	}

	out := e.Solve(ctx, req.Question)
	if !out.Solved() {
		observability.SolveOutcomesTotal.WithLabelValues(observability.OutcomeExhausted).Inc()
		return nil, &ExhaustedError{Attempts: out.Attempts}
	}

	observability.SolveOutcomesTotal.WithLabelValues(observability.OutcomeSolved).Inc()
	return &api.SolveResponse{Result: out.Text, Provider: out.Provider}, nil
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return slog.Default()
}
