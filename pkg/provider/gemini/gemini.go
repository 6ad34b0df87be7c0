package gemini

import (
	"context"

	"github.com/rhuss/mathsolver/pkg/provider"
	"github.com/rhuss/mathsolver/pkg/provider/httpprovider"
)

// GeminiProvider implements provider.Provider for the Gemini API. It
// delegates the HTTP exchange to the shared httpprovider.Client.
type GeminiProvider struct {
	cfg    Config
	client *httpprovider.Client
}

// Ensure GeminiProvider implements provider.Provider at compile time.
var _ provider.Provider = (*GeminiProvider)(nil)

// New creates a GeminiProvider. Missing credentials are not an error: the
// provider then reports NotConfigured on every attempt.
func New(cfg Config) *GeminiProvider {
	if cfg.Name == "" {
		cfg.Name = "gemini"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client := httpprovider.New(httpprovider.Config{
		Name:    cfg.Name,
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Label:   cfg.Label,
		Timeout: cfg.Timeout,
	}, dialect{model: cfg.Model})

	return &GeminiProvider{cfg: cfg, client: client}
}

// Name returns the provider identifier.
func (p *GeminiProvider) Name() string {
	return p.cfg.Name
}

// Attempt asks Gemini for a step-by-step solution.
func (p *GeminiProvider) Attempt(ctx context.Context, question string) provider.Result {
	return p.client.Attempt(ctx, question)
}

// Close releases provider resources.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}
