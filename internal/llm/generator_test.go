package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
)

type stubClient struct {
	tag        model.CategoryTag
	narrative  string
	classifyFn func() (model.CategoryTag, error)
	generateFn func() (string, error)
}

func (s *stubClient) Classify(_ context.Context, _ string) (model.CategoryTag, error) {
	if s.classifyFn != nil {
		return s.classifyFn()
	}
	return s.tag, nil
}

func (s *stubClient) Generate(_ context.Context, _ string) (string, error) {
	if s.generateFn != nil {
		return s.generateFn()
	}
	return s.narrative, nil
}

func TestNewGeneratorUnconfigured(t *testing.T) {
	gen, err := NewGenerator(Config{}, slog.Default())
	require.NoError(t, err)
	assert.Nil(t, gen)
}

func TestGeneratorClassify(t *testing.T) {
	t.Run("single attempt, no retry", func(t *testing.T) {
		attempts := 0
		gen := &Generator{
			client: &stubClient{classifyFn: func() (model.CategoryTag, error) {
				attempts++
				return "", errors.New("boom")
			}},
			limiter: NewRateLimiter(10),
			logger:  slog.Default(),
		}
		defer gen.Close()

		_, err := gen.Classify(context.Background(), "Will I find love?")
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("exhausted bucket reports rate limit", func(t *testing.T) {
		gen := &Generator{
			client:  &stubClient{tag: model.CategoryFuture},
			limiter: NewRateLimiter(1),
			logger:  slog.Default(),
		}
		defer gen.Close()

		_, err := gen.Classify(context.Background(), "What comes next?")
		require.NoError(t, err)

		_, err = gen.Classify(context.Background(), "What comes next?")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrRateLimit))
	})
}

func TestGeneratorGenerate(t *testing.T) {
	t.Run("retries transient failures", func(t *testing.T) {
		attempts := 0
		gen := &Generator{
			client: &stubClient{generateFn: func() (string, error) {
				attempts++
				if attempts < 2 {
					return "", errors.New("transient")
				}
				return "the cards speak", nil
			}},
			limiter:   NewRateLimiter(10),
			logger:    slog.Default(),
			retryOpts: common.RetryOptions{MaxAttempts: 3, InitialDelay: 1, MaxDelay: 1},
		}
		defer gen.Close()

		narrative, err := gen.Generate(context.Background(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, "the cards speak", narrative)
		assert.Equal(t, 2, attempts)
	})

	t.Run("exhausted retries report unavailable", func(t *testing.T) {
		gen := &Generator{
			client: &stubClient{generateFn: func() (string, error) {
				return "", errors.New("down")
			}},
			limiter:   NewRateLimiter(10),
			logger:    slog.Default(),
			retryOpts: common.RetryOptions{MaxAttempts: 2, InitialDelay: 1, MaxDelay: 1},
		}
		defer gen.Close()

		_, err := gen.Generate(context.Background(), "prompt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrGeneratorUnavailable))
	})
}

func TestBuildReadingPrompt(t *testing.T) {
	catalog := []model.Card{
		{ID: 1, Name: "Rider", Keywords: []string{"news"}, Meaning: "News arrives.", ReversedMeaning: "Delayed news."},
		{ID: 24, Name: "Heart", Keywords: []string{"love"}, Meaning: "Love blooms."},
		{ID: 33, Name: "Key", Keywords: []string{"solution"}, Meaning: "A breakthrough."},
	}
	def := &model.SpreadDefinition{
		ID: "past-present-future", Name: "Past, Present, Future",
		Layout: model.LayoutLinear, CardCount: 3,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "Past"},
			{Index: 1, Label: "Present"},
			{Index: 2, Label: "Future"},
		},
	}
	drawn := []model.DrawnCard{
		{CardID: 1, Position: 0, Reversed: true},
		{CardID: 24, Position: 1},
		{CardID: 33, Position: 2},
	}

	prompt := BuildReadingPrompt("Will I hear back soon?", drawn, catalog, def)

	assert.Contains(t, prompt, `"Will I hear back soon?"`)
	assert.Contains(t, prompt, "Past: Rider (reversed) — Delayed news.")
	assert.Contains(t, prompt, "Present: Heart — Love blooms.")
	assert.Contains(t, prompt, "Future: Key — A breakthrough.")
}
