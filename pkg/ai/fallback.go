package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
)

// FallbackService routes generation to the primary provider (Gemini, better quality)
// and falls back to the secondary one (Ollama, local) when the primary fails.
type FallbackService struct {
	primary   Generator
	secondary Generator
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(primary, secondary Generator) *FallbackService {
	return &FallbackService{
		primary:   primary,
		secondary: secondary,
	}
}

// Configured reports whether either provider can currently serve requests
func (f *FallbackService) Configured() bool {
	return IsConfigured(f.primary) || IsConfigured(f.secondary)
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
		"resource_exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// Generate tries the primary provider first and the secondary one on any error.
func (f *FallbackService) Generate(ctx context.Context, prompt string) (string, error) {
	if f.primary != nil {
		result, err := f.primary.Generate(ctx, prompt)
		if err == nil {
			return result, nil
		}

		switch {
		case isQuotaError(err):
			log.Printf("[AI] Primary provider quota exhausted: %v, falling back", err)
		case isConnectionError(err):
			log.Printf("[AI] Primary provider unreachable: %v, falling back", err)
		default:
			log.Printf("[AI] Primary provider error: %v, falling back", err)
		}

		if !IsConfigured(f.secondary) {
			return "", err
		}
	}

	if IsConfigured(f.secondary) {
		result, err := f.secondary.Generate(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("fallback generation failed: %w", err)
		}
		return result, nil
	}

	return "", fmt.Errorf("no AI provider available")
}
