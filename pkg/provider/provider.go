package provider

import "context"

// Provider abstracts a single math-answering backend.
//
// Attempt never returns an error and must not panic on backend data: every
// failure mode is reported through the returned Result. Implementations must
// be safe for concurrent use by multiple goroutines.
type Provider interface {
	// Name returns the provider identifier (e.g., "gemini", "wolframalpha").
	Name() string

	// Attempt issues at most one request for the question and reports the
	// outcome. A provider without credentials returns a NotConfigured
	// failure without touching the network.
	Attempt(ctx context.Context, question string) Result
}
