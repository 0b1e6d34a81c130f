package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
	"github.com/sibylline-app/sibyl/internal/spread"
)

// Question length bounds, applied after trimming.
const (
	minQuestionLen = 5
	maxQuestionLen = 500
)

// externalTimeout bounds the single attempt against the external
// classifier; on expiry the local scorer takes over.
const externalTimeout = 10 * time.Second

// ExternalClassifier is the optional external single-label collaborator.
type ExternalClassifier interface {
	Classify(ctx context.Context, question string) (model.CategoryTag, error)
}

// Classifier recommends a spread for a question.
type Classifier struct {
	external ExternalClassifier
	logger   *slog.Logger
}

// NewClassifier creates a classifier. external may be nil, in which case
// only the local keyword scorer runs.
func NewClassifier(external ExternalClassifier, logger *slog.Logger) *Classifier {
	return &Classifier{
		external: external,
		logger:   logger,
	}
}

// ValidateQuestion enforces the caller-boundary contract: a trimmed
// question of 5 to 500 characters. Violations are reported, never coerced.
func ValidateQuestion(question string) error {
	trimmed := strings.TrimSpace(question)
	if len(trimmed) < minQuestionLen {
		return fmt.Errorf("%w: must be at least %d characters", common.ErrInvalidQuestion, minQuestionLen)
	}
	if len(trimmed) > maxQuestionLen {
		return fmt.Errorf("%w: must be at most %d characters", common.ErrInvalidQuestion, maxQuestionLen)
	}
	return nil
}

// Classify maps the question to a spread recommendation. The external
// collaborator's failure is never fatal: every path ends in a valid result
// once the question itself passes validation.
func (c *Classifier) Classify(ctx context.Context, question string) (model.ClassificationResult, error) {
	if err := ValidateQuestion(question); err != nil {
		return model.ClassificationResult{}, err
	}

	lowered := strings.ToLower(strings.TrimSpace(question))

	// Guard clauses, checked in order, both short-circuit.
	if keyword, ok := containsAny(lowered, comprehensiveKeywords); ok {
		return result(model.CategoryComplex, spread.NineBox, model.SourceGuard, 0,
			fmt.Sprintf("question asks for a %s look, which calls for the nine-card box", keyword)), nil
	}
	if keyword, ok := containsAny(lowered, grandTableauKeywords); ok {
		return result(model.CategoryComplex, spread.GrandTableau, model.SourceGuard, 0,
			fmt.Sprintf("question mentions %q, which calls for the full Grand Tableau", keyword)), nil
	}

	// External classifier: one attempt with its own timeout, then fall
	// back. Unavailability is expected, not exceptional.
	if c.external != nil {
		extCtx, cancel := context.WithTimeout(ctx, externalTimeout)
		tag, err := c.external.Classify(extCtx, question)
		cancel()

		switch {
		case err != nil:
			c.logger.Debug("external classifier unavailable, using keyword scorer",
				"error", err)
		case tag == "":
			c.logger.Debug("external classifier returned no recognized label")
		default:
			if def, ok := byTag(tag); ok {
				c.logger.Info("question classified externally",
					"category", tag,
					"spread", def.SpreadID)
				return result(tag, def.SpreadID, model.SourceExternal, 0,
					fmt.Sprintf("classified as a %s question", tag)), nil
			}
		}
	}

	// Local weighted keyword scoring.
	if best, score, ok := scoreQuestion(lowered); ok {
		c.logger.Debug("question classified by keyword scorer",
			"category", best.Tag,
			"score", score)
		return result(best.Tag, best.SpreadID, model.SourceKeyword, score,
			fmt.Sprintf("keyword match suggests a %s question (score %d)", best.Tag, score)), nil
	}

	// Nothing scored: default to the 3-card general reading.
	return result(defaultCategory.Tag, defaultCategory.SpreadID, model.SourceDefault, 0,
		"no category matched; defaulting to a general three-card reading"), nil
}

// scoreQuestion runs the weighted keyword table over the lowercased
// question. Ties resolve to the earlier table entry: iteration order is the
// documented tie-break.
func scoreQuestion(lowered string) (categoryDefinition, int, bool) {
	var best categoryDefinition
	bestScore := 0

	for _, def := range categories {
		score := 0
		for _, keyword := range def.Keywords {
			if strings.Contains(lowered, keyword) {
				score += keywordWeight(keyword)
			}
		}

		// Context boosts for question openers.
		switch def.Tag {
		case model.CategoryDecision:
			if strings.HasPrefix(lowered, "should i") || strings.HasPrefix(lowered, "which") {
				score += 2
			}
		case model.CategoryYesNo:
			if strings.HasPrefix(lowered, "will i") || strings.HasPrefix(lowered, "can i") {
				score += 2
			}
		}

		// Strictly greater: first-defined category wins ties.
		if score > bestScore {
			best = def
			bestScore = score
		}
	}

	return best, bestScore, bestScore > 0
}

func containsAny(lowered string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return keyword, true
		}
	}
	return "", false
}

func result(tag model.CategoryTag, spreadID string, source model.ClassificationSource, score int, reason string) model.ClassificationResult {
	subtype := ""
	if def, err := spread.ByID(spreadID); err == nil {
		subtype = def.Subtype
	}
	return model.ClassificationResult{
		SpreadID: spreadID,
		Subtype:  subtype,
		Category: tag,
		Source:   source,
		Score:    score,
		Reason:   reason,
	}
}
