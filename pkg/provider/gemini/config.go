package gemini

import "time"

// DefaultBaseURL is the public Gemini API root.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gemini-2.5-pro"

// Config holds configuration for the Gemini provider.
type Config struct {
	// Name overrides the provider identifier. Defaults to "gemini".
	Name string

	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// APIKey is sent in the x-goog-api-key header. Empty means not configured.
	APIKey string

	// Model selects the Gemini model. Defaults to DefaultModel.
	Model string

	// Label optionally prefixes answers with a source heading.
	Label string

	// Timeout for each request. Defaults to 60s.
	Timeout time.Duration
}
