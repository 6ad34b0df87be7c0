package openaicompat

import (
	"context"

	"github.com/rhuss/mathsolver/pkg/provider"
	"github.com/rhuss/mathsolver/pkg/provider/httpprovider"
)

// ChatProvider implements provider.Provider for OpenAI-compatible servers.
// It delegates the HTTP exchange to the shared httpprovider.Client.
type ChatProvider struct {
	cfg    Config
	client *httpprovider.Client
}

// Ensure ChatProvider implements provider.Provider at compile time.
var _ provider.Provider = (*ChatProvider)(nil)

// New creates a ChatProvider.
func New(cfg Config) *ChatProvider {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}

	client := httpprovider.New(httpprovider.Config{
		Name:    cfg.Name,
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Label:   cfg.Label,
		Timeout: cfg.Timeout,
	}, dialect{model: cfg.Model, maxTokens: cfg.MaxTokens})

	return &ChatProvider{cfg: cfg, client: client}
}

// Name returns the provider identifier.
func (p *ChatProvider) Name() string {
	return p.cfg.Name
}

// Attempt sends the question as a single-turn chat completion.
func (p *ChatProvider) Attempt(ctx context.Context, question string) provider.Result {
	return p.client.Attempt(ctx, question)
}

// Close releases provider resources.
func (p *ChatProvider) Close() error {
	return p.client.Close()
}
