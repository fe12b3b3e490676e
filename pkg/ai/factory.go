package ai

import (
	"context"
	"fmt"

	"hypotrophy-backend/pkg/gemini"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	GeminiAPIKey string
	GeminiModel  string

	// Ollama config, read on every request so runtime settings apply immediately.
	// An empty base URL means Ollama is not configured.
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewGenerator creates a Generator based on the config.
// The returned close function releases provider clients and is never nil.
func NewGenerator(ctx context.Context, cfg Config) (Generator, func() error, error) {
	noop := func() error { return nil }

	// The Ollama leg is built whenever a getter exists, even if it currently
	// returns "", so a base URL set at runtime enables it without a restart.
	var ollama *OllamaService
	if cfg.GetOllamaBaseURL != nil {
		getModel := cfg.GetOllamaModel
		if getModel == nil {
			getModel = func() string { return "" }
		}
		ollama = NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, getModel)
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, noop, ErrMissingAPIKey
		}
		g, err := gemini.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		return g, g.Close, nil

	case ProviderOllama:
		if ollama == nil {
			return nil, noop, fmt.Errorf("an Ollama base URL source is required for the ollama provider")
		}
		return ollama, noop, nil

	default:
		if cfg.GeminiAPIKey == "" {
			if ollama != nil {
				return ollama, noop, nil
			}
			return nil, noop, ErrMissingAPIKey
		}
		g, err := gemini.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		if ollama != nil {
			return NewFallbackService(g, ollama), g.Close, nil
		}
		return g, g.Close, nil
	}
}
