package engine

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-attempt entries. Defaults to
// slog.Default() at call time.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithTracer sets the tracer for solve and attempt spans. Defaults to the
// global mathsolver tracer.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = t
	}
}
