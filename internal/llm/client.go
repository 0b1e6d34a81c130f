// Package llm provides the external text-classification and text-generation
// collaborator. It speaks the OpenAI-compatible chat wire format used by
// DeepSeek, with rate limiting and configurable retries on the generation
// path. The collaborator is always optional: every caller degrades to a
// local fallback when it is unconfigured or failing.
package llm

import (
	"context"

	"github.com/sibylline-app/sibyl/internal/model"
)

// Client defines the external AI collaborator contract.
type Client interface {
	// Classify asks for a single category tag for the question. An empty
	// tag with nil error means the service produced no recognized label.
	Classify(ctx context.Context, question string) (model.CategoryTag, error)

	// Generate produces a free-form reading narrative for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for the chat client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     int // seconds
	RateLimit   int // requests per minute
	MaxRetries  int
}
