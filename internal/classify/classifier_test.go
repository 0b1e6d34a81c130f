package classify

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
	"github.com/sibylline-app/sibyl/internal/spread"
)

type fakeExternal struct {
	tag   model.CategoryTag
	err   error
	calls int
}

func (f *fakeExternal) Classify(_ context.Context, _ string) (model.CategoryTag, error) {
	f.calls++
	return f.tag, f.err
}

func localOnly() *Classifier {
	return NewClassifier(nil, slog.Default())
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		wantErr  bool
	}{
		{name: "valid", question: "Will I find a new home this year?"},
		{name: "exactly five chars", question: "Love?"},
		{name: "too short", question: "Hi?", wantErr: true},
		{name: "only whitespace", question: "        ", wantErr: true},
		{name: "short after trimming", question: "  ab  ", wantErr: true},
		{name: "too long", question: strings.Repeat("a", 501), wantErr: true},
		{name: "long but within bounds", question: strings.Repeat("a", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuestion(tt.question)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidQuestion))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestClassifyGuards(t *testing.T) {
	t.Run("comprehensive forces nine-card box", func(t *testing.T) {
		res, err := localOnly().Classify(context.Background(), "I want a detailed look at my career and my love life")
		require.NoError(t, err)
		assert.Equal(t, spread.NineBox, res.SpreadID)
		assert.Equal(t, model.SourceGuard, res.Source)
	})

	t.Run("grand tableau mention wins regardless of other keywords", func(t *testing.T) {
		res, err := localOnly().Classify(context.Background(), "Should I do a grand tableau about my job and money?")
		require.NoError(t, err)
		assert.Equal(t, spread.GrandTableau, res.SpreadID)
		assert.Equal(t, model.SourceGuard, res.Source)
	})

	t.Run("guards skip the external classifier", func(t *testing.T) {
		ext := &fakeExternal{tag: model.CategoryMoney}
		c := NewClassifier(ext, slog.Default())

		_, err := c.Classify(context.Background(), "Give me a thorough reading please")
		require.NoError(t, err)
		assert.Zero(t, ext.calls)
	})
}

func TestClassifyExternal(t *testing.T) {
	t.Run("recognized external tag wins", func(t *testing.T) {
		ext := &fakeExternal{tag: model.CategoryWellness}
		c := NewClassifier(ext, slog.Default())

		res, err := c.Classify(context.Background(), "How is my money and income situation developing?")
		require.NoError(t, err)
		assert.Equal(t, model.SourceExternal, res.Source)
		assert.Equal(t, spread.MindBodySpirit, res.SpreadID)
		assert.Equal(t, "mind-body-spirit", res.Subtype)
	})

	t.Run("external error degrades to keyword scorer", func(t *testing.T) {
		ext := &fakeExternal{err: errors.New("service down")}
		c := NewClassifier(ext, slog.Default())

		res, err := c.Classify(context.Background(), "How is my money and income situation developing?")
		require.NoError(t, err)
		assert.Equal(t, model.SourceKeyword, res.Source)
		assert.Equal(t, model.CategoryMoney, res.Category)
	})

	t.Run("empty external label degrades to keyword scorer", func(t *testing.T) {
		ext := &fakeExternal{tag: ""}
		c := NewClassifier(ext, slog.Default())

		res, err := c.Classify(context.Background(), "When will my debt be paid off?")
		require.NoError(t, err)
		assert.Equal(t, model.SourceKeyword, res.Source)
	})
}

func TestClassifyKeywordScoring(t *testing.T) {
	t.Run("decision boost on should-i opener", func(t *testing.T) {
		res, err := localOnly().Classify(context.Background(), "Should I take the new job offer?")
		require.NoError(t, err)
		assert.Equal(t, model.CategoryDecision, res.Category)
		assert.Equal(t, spread.SituationChallengeAdvice, res.SpreadID)
		// "should i" (2) + opener boost (2)
		assert.Equal(t, 4, res.Score)
	})

	t.Run("yesno boost on will-i opener", func(t *testing.T) {
		res, err := localOnly().Classify(context.Background(), "Will I hear good news?")
		require.NoError(t, err)
		assert.Equal(t, model.CategoryYesNo, res.Category)
		assert.Equal(t, spread.YesNo, res.SpreadID)
	})

	t.Run("relationship keywords", func(t *testing.T) {
		res, err := localOnly().Classify(context.Background(), "Is there a future with my partner in this relationship?")
		require.NoError(t, err)
		assert.Equal(t, model.CategoryRelationship, res.Category)
		assert.Equal(t, spread.Relationship, res.SpreadID)
	})

	t.Run("no match defaults to general sentence", func(t *testing.T) {
		res, err := localOnly().Classify(context.Background(), "Hmm, cards, please speak.")
		require.NoError(t, err)
		assert.Equal(t, model.SourceDefault, res.Source)
		assert.Equal(t, spread.Sentence, res.SpreadID)
	})

	t.Run("validation errors pass through", func(t *testing.T) {
		_, err := localOnly().Classify(context.Background(), "Hi")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrInvalidQuestion))
	})
}

func TestKeywordWeight(t *testing.T) {
	assert.Equal(t, 1, keywordWeight("when"))
	assert.Equal(t, 1, keywordWeight("money"))
	assert.Equal(t, 2, keywordWeight("should i"))
	assert.Equal(t, 2, keywordWeight("timing"))
	assert.Equal(t, 3, keywordWeight("is it possible"))
	assert.Equal(t, 3, keywordWeight("whole situation"))
}

func TestScoreQuestionTieBreak(t *testing.T) {
	// "outcome" (future, weight 2) and "how long" (timing, weight 2)
	// tie; the earlier table entry wins.
	best, score, ok := scoreQuestion("outcome how long")
	require.True(t, ok)
	assert.Equal(t, 2, score)
	assert.Equal(t, model.CategoryFuture, best.Tag)
}

func TestCategoryTableCoversAllTags(t *testing.T) {
	tags := []model.CategoryTag{
		model.CategoryFuture, model.CategoryTiming, model.CategoryDecision,
		model.CategoryYesNo, model.CategoryProblem, model.CategorySolution,
		model.CategoryRelationship, model.CategoryCareer, model.CategoryWellness,
		model.CategoryMoney, model.CategoryGeneral, model.CategoryComplex,
	}
	require.Len(t, categories, len(tags))

	for _, tag := range tags {
		def, ok := byTag(tag)
		require.True(t, ok, "missing category %s", tag)
		_, err := spread.ByID(def.SpreadID)
		assert.NoError(t, err, "category %s maps to unknown spread", tag)
	}
}
