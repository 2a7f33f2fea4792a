// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AIAdvisorService defines the interface for the AI chat advisor backend.
// It receives a fully rendered prompt and returns free-form advice text.
type AIAdvisorService interface {
	// IsAvailable reports whether the AI backend is configured.
	IsAvailable() bool

	// GenerateAdvice generates advisor text for the given prompt.
	GenerateAdvice(ctx context.Context, prompt string) (string, error)
}
