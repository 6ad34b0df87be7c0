package wolfram

import (
	"context"

	"github.com/rhuss/mathsolver/pkg/provider"
	"github.com/rhuss/mathsolver/pkg/provider/httpprovider"
)

// ComputeProvider implements provider.Provider for WolframAlpha.
type ComputeProvider struct {
	cfg    Config
	client *httpprovider.Client
}

// Ensure ComputeProvider implements provider.Provider at compile time.
var _ provider.Provider = (*ComputeProvider)(nil)

// New creates a ComputeProvider.
func New(cfg Config) *ComputeProvider {
	if cfg.Name == "" {
		cfg.Name = "wolframalpha"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Label == "" && !cfg.NoLabel {
		cfg.Label = DefaultLabel
	}
	if cfg.NoLabel {
		cfg.Label = ""
	}

	client := httpprovider.New(httpprovider.Config{
		Name:    cfg.Name,
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.AppID,
		Label:   cfg.Label,
		Timeout: cfg.Timeout,
	}, dialect{})

	return &ComputeProvider{cfg: cfg, client: client}
}

// Name returns the provider identifier.
func (p *ComputeProvider) Name() string {
	return p.cfg.Name
}

// Attempt asks WolframAlpha for a short answer.
func (p *ComputeProvider) Attempt(ctx context.Context, question string) provider.Result {
	return p.client.Attempt(ctx, question)
}

// Close releases provider resources.
func (p *ComputeProvider) Close() error {
	return p.client.Close()
}
