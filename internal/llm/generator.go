package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
)

// Generator wraps a Client with rate limiting and the caller's retry policy
// for the generation path. Classification is deliberately single-attempt:
// its callers fall back to the local keyword scorer instead of retrying.
type Generator struct {
	client    Client
	limiter   *RateLimiter
	logger    *slog.Logger
	retryOpts common.RetryOptions
}

// NewGenerator creates a rate-limited generator around the configured
// provider. An empty provider returns (nil, nil): the collaborator is
// simply unconfigured, which is not an error.
func NewGenerator(cfg Config, logger *slog.Logger) (*Generator, error) {
	if cfg.Provider == "" {
		return nil, nil
	}

	client, err := newChatClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}

	return &Generator{
		client:    client,
		limiter:   NewRateLimiter(cfg.RateLimit),
		logger:    logger,
		retryOpts: retryOpts,
	}, nil
}

// Classify asks the external service for a category tag. One attempt only;
// a missing token or any transport failure reports the collaborator as
// unavailable and the caller degrades locally.
func (g *Generator) Classify(ctx context.Context, question string) (model.CategoryTag, error) {
	if !g.limiter.TryAcquire() {
		return "", common.ErrRateLimit
	}

	tag, err := g.client.Classify(ctx, question)
	if err != nil {
		g.logger.Warn("external classification failed",
			"error", err)
		return "", err
	}

	return tag, nil
}

// Generate produces a narrative for the prompt, waiting for rate-limit
// tokens and retrying transient failures per the configured policy.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit error: %w", err)
	}

	var narrative string

	err := common.WithRetry(ctx, func() error {
		response, genErr := g.client.Generate(ctx, prompt)
		if genErr != nil {
			g.logger.Warn("generation attempt failed",
				"error", genErr)
			return &common.RetryableError{Err: genErr, Retryable: true}
		}

		narrative = response
		return nil
	}, g.retryOpts)

	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrGeneratorUnavailable, err)
	}

	return narrative, nil
}

// Close releases the rate limiter's refill goroutine.
func (g *Generator) Close() error {
	if g.limiter != nil {
		g.limiter.Close()
	}
	return nil
}
