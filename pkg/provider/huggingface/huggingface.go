package huggingface

import (
	"context"

	"github.com/rhuss/mathsolver/pkg/provider"
	"github.com/rhuss/mathsolver/pkg/provider/httpprovider"
)

// InferenceProvider implements provider.Provider for the Hugging Face
// Inference API.
type InferenceProvider struct {
	cfg    Config
	client *httpprovider.Client
}

// Ensure InferenceProvider implements provider.Provider at compile time.
var _ provider.Provider = (*InferenceProvider)(nil)

// New creates an InferenceProvider.
func New(cfg Config) *InferenceProvider {
	if cfg.Name == "" {
		cfg.Name = "huggingface"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxNewTokens <= 0 {
		cfg.MaxNewTokens = DefaultMaxNewTokens
	}

	client := httpprovider.New(httpprovider.Config{
		Name:    cfg.Name,
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.Token,
		Label:   cfg.Label,
		Timeout: cfg.Timeout,
	}, dialect{model: cfg.Model, maxNewTokens: cfg.MaxNewTokens})

	return &InferenceProvider{cfg: cfg, client: client}
}

// Name returns the provider identifier.
func (p *InferenceProvider) Name() string {
	return p.cfg.Name
}

// Attempt asks the hosted model for a step-by-step solution.
func (p *InferenceProvider) Attempt(ctx context.Context, question string) provider.Result {
	return p.client.Attempt(ctx, question)
}

// Close releases provider resources.
func (p *InferenceProvider) Close() error {
	return p.client.Close()
}
