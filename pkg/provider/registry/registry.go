// Package registry builds the provider fallback chain from configuration.
package registry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rhuss/mathsolver/pkg/config"
	"github.com/rhuss/mathsolver/pkg/provider"
	"github.com/rhuss/mathsolver/pkg/provider/gemini"
	"github.com/rhuss/mathsolver/pkg/provider/huggingface"
	"github.com/rhuss/mathsolver/pkg/provider/openaicompat"
	"github.com/rhuss/mathsolver/pkg/provider/wolfram"
)

// Build creates one provider per config entry, in order. Entries without
// a credential are still built; they report NotConfigured when attempted.
func Build(cfgs []config.ProviderConfig) ([]provider.Provider, error) {
	chain := make([]provider.Provider, 0, len(cfgs))
	for i, pc := range cfgs {
		p, err := build(pc)
		if err != nil {
			return nil, fmt.Errorf("providers[%d] (%s): %w", i, pc.Name, err)
		}
		if pc.APIKey == "" {
			slog.Warn("provider has no credential, it will be skipped at request time",
				"provider", pc.Name, "kind", pc.Kind, "position", i)
		}
		chain = append(chain, p)
	}
	return chain, nil
}

func build(pc config.ProviderConfig) (provider.Provider, error) {
	switch pc.Kind {
	case config.KindGemini:
		return gemini.New(gemini.Config{
			Name:    pc.Name,
			BaseURL: pc.BaseURL,
			APIKey:  pc.APIKey,
			Model:   pc.Model,
			Label:   pc.Label,
			Timeout: pc.Timeout,
		}), nil
	case config.KindWolfram:
		return wolfram.New(wolfram.Config{
			Name:    pc.Name,
			BaseURL: pc.BaseURL,
			AppID:   pc.APIKey,
			Label:   pc.Label,
			NoLabel: pc.Label == "",
			Timeout: pc.Timeout,
		}), nil
	case config.KindHuggingFace:
		return huggingface.New(huggingface.Config{
			Name:         pc.Name,
			BaseURL:      pc.BaseURL,
			Token:        pc.APIKey,
			Model:        pc.Model,
			MaxNewTokens: pc.MaxNewTokens,
			Label:        pc.Label,
			Timeout:      pc.Timeout,
		}), nil
	case config.KindOpenAI:
		return openaicompat.New(openaicompat.Config{
			Name:      pc.Name,
			BaseURL:   pc.BaseURL,
			APIKey:    pc.APIKey,
			Model:     pc.Model,
			MaxTokens: pc.MaxNewTokens,
			Label:     pc.Label,
			Timeout:   pc.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider kind %q", pc.Kind)
	}
}

// Names returns the provider names in chain order.
func Names(chain []provider.Provider) []string {
	names := make([]string, len(chain))
	for i, p := range chain {
		names[i] = p.Name()
	}
	return names
}

// Close releases resources held by providers that implement io.Closer.
// Every closer is called; the failures are joined.
func Close(chain []provider.Provider) error {
	var errs []error
	for _, p := range chain {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}
