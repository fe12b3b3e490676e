package ai

import (
	"context"
	"errors"
)

// Generator turns a prompt into free text.
// Implement this interface to add new AI providers (Gemini, Ollama, OpenAI, etc.)
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)

var (
	// ErrMissingAPIKey is returned when a provider that needs a key has none.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

	// ErrOllamaNotConfigured is returned by Ollama calls while no base URL is set.
	ErrOllamaNotConfigured = errors.New("ollama base URL is not configured")
)

// Configurable is implemented by generators whose availability depends on
// settings that can change while the server runs.
type Configurable interface {
	Configured() bool
}

// IsConfigured reports whether g can currently serve requests.
// A nil generator never can; one without runtime settings always can.
func IsConfigured(g Generator) bool {
	if g == nil {
		return false
	}
	if c, ok := g.(Configurable); ok {
		return c.Configured()
	}
	return true
}
