// Package openaicompat implements provider.Provider for any OpenAI-compatible
// Chat Completions backend (vLLM, LiteLLM, Ollama, OpenAI itself). It lets a
// self-hosted model join the fallback chain next to the hosted services.
package openaicompat
