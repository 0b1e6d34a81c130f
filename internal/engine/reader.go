// Package engine orchestrates a complete reading: spread selection, card
// draw, and narrative generation with parsing. Past question validation it
// always produces a usable reading, with or without an AI generator.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sibylline-app/sibyl/internal/classify"
	"github.com/sibylline-app/sibyl/internal/deck"
	"github.com/sibylline-app/sibyl/internal/llm"
	"github.com/sibylline-app/sibyl/internal/model"
	"github.com/sibylline-app/sibyl/internal/parse"
	"github.com/sibylline-app/sibyl/internal/spread"
)

// Reader runs readings end to end. The generator is optional; a nil
// generator means every narrative is composed locally from card meanings.
type Reader struct {
	catalog    deck.Provider
	classifier QuestionClassifier
	generator  NarrativeGenerator
	logger     *slog.Logger
}

// New creates a reader. classifier must be non-nil; generator may be nil.
func New(catalog deck.Provider, classifier QuestionClassifier, generator NarrativeGenerator, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		catalog:    catalog,
		classifier: classifier,
		generator:  generator,
		logger:     logger,
	}
}

// Draw selects the spread and draws its cards from the catalog.
func (r *Reader) Draw(spreadID string) (*model.SpreadDefinition, []model.DrawnCard, error) {
	def, err := spread.ByID(spreadID)
	if err != nil {
		return nil, nil, err
	}
	cards, err := r.catalog.AllCards()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load card catalog: %w", err)
	}
	drawn, err := deck.Draw(cards, def.CardCount)
	if err != nil {
		return nil, nil, err
	}
	return def, drawn, nil
}

// Classify recommends a spread for the question.
func (r *Reader) Classify(ctx context.Context, question string) (model.ClassificationResult, error) {
	return r.classifier.Classify(ctx, question)
}

// Compose runs a full reading. When spreadID is empty the question is
// classified to pick one. Generator failures are logged and degrade to a
// locally composed narrative, never an error.
func (r *Reader) Compose(ctx context.Context, question, spreadID string) (*model.Reading, error) {
	if err := classify.ValidateQuestion(question); err != nil {
		return nil, err
	}

	if spreadID == "" {
		result, err := r.classifier.Classify(ctx, question)
		if err != nil {
			return nil, err
		}
		spreadID = result.SpreadID
		r.logger.Debug("classified question",
			"spread", result.SpreadID,
			"category", result.Category,
			"source", result.Source)
	}

	def, drawn, err := r.Draw(spreadID)
	if err != nil {
		return nil, err
	}
	cards, err := r.catalog.AllCards()
	if err != nil {
		return nil, fmt.Errorf("failed to load card catalog: %w", err)
	}

	narrative := r.narrate(ctx, question, def, drawn, cards)

	return &model.Reading{
		CreatedAt: time.Now().UTC(),
		Title:     fmt.Sprintf("%s Reading", def.Name),
		Question:  strings.TrimSpace(question),
		SpreadID:  def.ID,
		Subtype:   def.Subtype,
		Cards:     drawn,
		Narrative: narrative,
	}, nil
}

func (r *Reader) narrate(ctx context.Context, question string, def *model.SpreadDefinition, drawn []model.DrawnCard, cards []model.Card) model.ParsedReading {
	if r.generator != nil {
		prompt := llm.BuildReadingPrompt(question, drawn, cards, def)
		text, err := r.generator.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return parse.Reading(text, def.Layout, def.Subtype)
		}
		if err != nil {
			r.logger.Warn("narrative generation failed, composing locally", "error", err)
		}
	}

	narrative := parse.Defaults(def.Layout, def.Subtype)
	if story := localStoryline(def, drawn, cards); story != "" {
		narrative.Storyline = story
	}
	return narrative
}

// localStoryline stitches the drawn cards' own meanings into a narrative
// when no generator output is available.
func localStoryline(def *model.SpreadDefinition, drawn []model.DrawnCard, cards []model.Card) string {
	var b strings.Builder
	for _, dc := range drawn {
		card, err := deck.ByID(cards, dc.CardID)
		if err != nil {
			continue
		}
		meaning := card.Meaning
		if dc.Reversed && card.ReversedMeaning != "" {
			meaning = card.ReversedMeaning
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		pm, pmErr := spread.PositionMeaning(def.ID, dc.Position)
		if pmErr == nil && pm.Label != "" && def.Layout == model.LayoutLinear {
			fmt.Fprintf(&b, "%s (%s): %s", pm.Label, card.Name, meaning)
		} else {
			fmt.Fprintf(&b, "%s: %s", card.Name, meaning)
		}
	}
	return b.String()
}
