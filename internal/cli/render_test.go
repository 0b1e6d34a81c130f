package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibylline-app/sibyl/internal/deck"
	"github.com/sibylline-app/sibyl/internal/model"
	"github.com/sibylline-app/sibyl/internal/spread"
)

func TestRenderDrawnCardsLinear(t *testing.T) {
	catalog, err := deck.Catalog()
	require.NoError(t, err)

	def, err := spread.ByID(spread.PastPresentFuture)
	require.NoError(t, err)

	drawn := []model.DrawnCard{
		{CardID: 1, Position: 0},
		{CardID: 2, Position: 1, Reversed: true},
		{CardID: 3, Position: 2},
	}

	out := RenderDrawnCards(def, drawn, catalog)
	assert.Contains(t, out, "Past")
	assert.Contains(t, out, "Rider")
	assert.Contains(t, out, "Clover")
	assert.Contains(t, out, ReversedMark)
	assert.Len(t, strings.Split(out, "\n"), 3)
}

func TestRenderDrawnCardsGrid(t *testing.T) {
	catalog, err := deck.Catalog()
	require.NoError(t, err)

	def, err := spread.ByID(spread.GrandTableau)
	require.NoError(t, err)

	drawn, err := deck.Draw(catalog, model.DeckSize)
	require.NoError(t, err)

	out := RenderDrawnCards(def, drawn, catalog)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, model.GridRows)
	for _, card := range catalog {
		assert.Contains(t, out, card.Name)
	}
}

func TestRenderCombinations(t *testing.T) {
	catalog, err := deck.Catalog()
	require.NoError(t, err)

	def, err := spread.ByID(spread.PastPresentFuture)
	require.NoError(t, err)

	drawn := []model.DrawnCard{
		{CardID: 1, Position: 0},
		{CardID: 2, Position: 1},
		{CardID: 3, Position: 2},
	}

	out := RenderCombinations(def, drawn, catalog)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Rider")
	assert.Contains(t, lines[0], "Clover")
	assert.Contains(t, lines[1], "Clover")
	assert.Contains(t, lines[1], "Ship")
}

func TestRenderNarrative(t *testing.T) {
	out := RenderNarrative(model.ParsedReading{
		Storyline: "A letter arrives.",
		Risk:      "old debts",
		Timing:    "this week",
		Action:    "answer promptly",
	})

	for _, want := range []string{"Story", "Risk", "Timing", "Guidance", "A letter arrives.", "answer promptly"} {
		assert.Contains(t, out, want)
	}
}
