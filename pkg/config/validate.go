package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for required fields and valid values.
// Every problem is reported, each with a descriptive field path.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be > 0, got %d", c.Server.Port))
	}
	if c.Server.MaxBodySize <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_size must be > 0, got %d", c.Server.MaxBodySize))
	}

	seen := make(map[string]bool, len(c.Providers))
	for i, p := range c.Providers {
		field := fmt.Sprintf("providers[%d]", i)

		switch {
		case p.Name == "":
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		case seen[p.Name]:
			errs = append(errs, fmt.Errorf("%s.name %q is not unique", field, p.Name))
		default:
			seen[p.Name] = true
		}

		switch p.Kind {
		case KindGemini, KindWolfram, KindHuggingFace, KindOpenAI:
			// valid
		default:
			errs = append(errs, fmt.Errorf("%s.kind must be one of %q, %q, %q, %q, got %q", field, KindGemini, KindWolfram, KindHuggingFace, KindOpenAI, p.Kind))
		}

		if p.BaseURL == "" {
			errs = append(errs, fmt.Errorf("%s.base_url is required", field))
		}
		if p.Timeout < 0 {
			errs = append(errs, fmt.Errorf("%s.timeout must be >= 0, got %s", field, p.Timeout))
		}
		if p.MaxNewTokens < 0 {
			errs = append(errs, fmt.Errorf("%s.max_new_tokens must be >= 0, got %d", field, p.MaxNewTokens))
		}
	}

	if c.Observability.Metrics.Enabled && !strings.HasPrefix(c.Observability.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("observability.metrics.path must start with \"/\", got %q", c.Observability.Metrics.Path))
	}
	if c.MCP.Enabled && !strings.HasPrefix(c.MCP.Path, "/") {
		errs = append(errs, fmt.Errorf("mcp.path must start with \"/\", got %q", c.MCP.Path))
	}

	return errors.Join(errs...)
}
