package openaicompat

import "time"

// DefaultName is the provider identifier when Config.Name is empty.
const DefaultName = "openai"

// Config holds configuration for an OpenAI-compatible provider.
type Config struct {
	// Name overrides the provider identifier. Defaults to DefaultName.
	Name string

	// BaseURL is the server root without the /v1 suffix
	// (e.g., "http://localhost:8000"). Required.
	BaseURL string

	// APIKey is sent as a Bearer token. Empty means not configured; local
	// servers that ignore the key accept any placeholder such as "EMPTY".
	APIKey string

	// Model is the served model name. Required by most servers.
	Model string

	// MaxTokens caps the completion length. Zero leaves it to the server.
	MaxTokens int

	// Label optionally prefixes answers with a source heading.
	Label string

	// Timeout for each request. Defaults to 60s.
	Timeout time.Duration
}
