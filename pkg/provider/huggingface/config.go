package huggingface

import "time"

const (
	// DefaultBaseURL is the public Inference API root.
	DefaultBaseURL = "https://api-inference.huggingface.co"

	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "meta-llama/Meta-Llama-3-8B-Instruct"

	// DefaultMaxNewTokens caps generation length.
	DefaultMaxNewTokens = 512
)

// Config holds configuration for the Hugging Face provider.
type Config struct {
	// Name overrides the provider identifier. Defaults to "huggingface".
	Name string

	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// Token is the bearer token. Empty means not configured.
	Token string

	// Model is the repository id of the model. Defaults to DefaultModel.
	Model string

	// MaxNewTokens defaults to DefaultMaxNewTokens.
	MaxNewTokens int

	// Label optionally prefixes answers with a source heading.
	Label string

	// Timeout for each request. Defaults to 60s.
	Timeout time.Duration
}
