package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agenthands/cardsmith/internal/config"
)

// ErrNoProvider means the configuration asks for the offline keyword classifier.
var ErrNoProvider = errors.New("no llm provider configured")

// NewClient builds the adapter named by cfg.Provider.
func NewClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch provider {
	case "", "keyword", "test":
		return nil, ErrNoProvider

	case "openai":
		if cfg.APIKey == "" {
			return nil, ErrNoProvider
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		if cfg.APIKey == "" {
			return nil, ErrNoProvider
		}
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)

	case "claude", "anthropic":
		if cfg.APIKey == "" {
			return nil, ErrNoProvider
		}
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "ollama":
		// Ollama exposes an OpenAI-compatible API under /v1 and ignores the key.
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		return NewOpenAIClient(apiKey, cfg.Model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
