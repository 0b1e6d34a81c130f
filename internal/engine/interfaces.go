package engine

import (
	"context"

	"github.com/sibylline-app/sibyl/internal/model"
)

// QuestionClassifier recommends a spread for a free-text question.
type QuestionClassifier interface {
	Classify(ctx context.Context, question string) (model.ClassificationResult, error)
}

// NarrativeGenerator produces a free-text reading from a prompt. It may be
// unavailable at any time; the reader degrades to a local narrative.
type NarrativeGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
