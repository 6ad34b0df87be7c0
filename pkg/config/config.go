// Package config provides unified configuration for the mathsolver service.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (MATHSOLVER_ prefix, legacy PORT)
//  4. Credential resolution (api_key_file, then api_key_env)
//  5. Validation
package config

import "time"

// Provider kinds understood by the registry.
const (
	KindGemini      = "gemini"
	KindWolfram     = "wolfram"
	KindHuggingFace = "huggingface"
	KindOpenAI      = "openai" // any OpenAI-compatible Chat Completions server
)

// Config holds all configuration for the mathsolver service.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Providers     []ProviderConfig    `yaml:"providers"`
	Observability ObservabilityConfig `yaml:"observability"`
	MCP           MCPConfig           `yaml:"mcp"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`             // default: 3000
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // default: 30s
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // default: 300s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // default: 10s
	MaxBodySize     int64         `yaml:"max_body_size"`    // default: 1 MiB
	CORSOrigins     []string      `yaml:"cors_origins"`     // default: ["*"]
}

// ProviderConfig describes one entry of the fallback chain. Order in the
// providers list is chain order.
type ProviderConfig struct {
	Name         string        `yaml:"name"`
	Kind         string        `yaml:"kind"` // "gemini", "wolfram", "huggingface" or "openai"
	BaseURL      string        `yaml:"base_url"`
	Model        string        `yaml:"model"`
	APIKey       string        `yaml:"api_key"`
	APIKeyFile   string        `yaml:"api_key_file"` // _file variant for api_key
	APIKeyEnv    string        `yaml:"api_key_env"`  // env var holding api_key
	Label        string        `yaml:"label"`
	Timeout      time.Duration `yaml:"timeout"`        // default: 60s
	MaxNewTokens int           `yaml:"max_new_tokens"` // huggingface and openai
}

// ObservabilityConfig holds monitoring and logging settings.
type ObservabilityConfig struct {
	Metrics  MetricsConfig `yaml:"metrics"`
	Tracing  TracingConfig `yaml:"tracing"`
	LogLevel string        `yaml:"log_level"` // default: "INFO"
	Debug    string        `yaml:"debug"`     // comma-separated debug categories
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: true
	Path    string `yaml:"path"`    // default: "/metrics"
}

// TracingConfig controls the in-process OpenTelemetry tracer provider.
type TracingConfig struct {
	Enabled bool `yaml:"enabled"` // default: false
}

// MCPConfig holds settings for the MCP tool endpoint.
type MCPConfig struct {
	Enabled bool   `yaml:"enabled"` // default: false
	Path    string `yaml:"path"`    // default: "/mcp"
}

// DefaultProviders returns the standard chain: Gemini, then WolframAlpha,
// then Hugging Face.
func DefaultProviders() []ProviderConfig {
	return []ProviderConfig{
		{
			Name:      "gemini",
			Kind:      KindGemini,
			BaseURL:   "https://generativelanguage.googleapis.com",
			Model:     "gemini-2.5-pro",
			APIKeyEnv: "GEMINI_API_KEY",
			Timeout:   60 * time.Second,
		},
		{
			Name:      "wolframalpha",
			Kind:      KindWolfram,
			BaseURL:   "http://api.wolframalpha.com",
			APIKeyEnv: "WOLFRAM_API_KEY",
			Label:     "WolframAlpha Solution",
			Timeout:   30 * time.Second,
		},
		{
			Name:         "huggingface",
			Kind:         KindHuggingFace,
			BaseURL:      "https://api-inference.huggingface.co",
			Model:        "meta-llama/Meta-Llama-3-8B-Instruct",
			APIKeyEnv:    "HF_API_KEY",
			MaxNewTokens: 512,
			Timeout:      90 * time.Second,
		},
	}
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            3000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    300 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodySize:     1 << 20,
			CORSOrigins:     []string{"*"},
		},
		Providers: DefaultProviders(),
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
			LogLevel: "INFO",
		},
		MCP: MCPConfig{
			Path: "/mcp",
		},
	}
}
