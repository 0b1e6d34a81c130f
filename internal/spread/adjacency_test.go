package spread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibylline-app/sibyl/internal/model"
)

func drawnSequence(count int) []model.DrawnCard {
	cards := make([]model.DrawnCard, count)
	for i := range cards {
		cards[i] = model.DrawnCard{CardID: i + 1, Position: i}
	}
	return cards
}

func TestLinearNeighbors(t *testing.T) {
	cards := drawnSequence(3)

	t.Run("boundary has one neighbor", func(t *testing.T) {
		neighbors := LinearNeighbors(cards, 0)
		require.Len(t, neighbors, 1)
		assert.Equal(t, 1, neighbors[0].Position)

		neighbors = LinearNeighbors(cards, 2)
		require.Len(t, neighbors, 1)
		assert.Equal(t, 1, neighbors[0].Position)
	})

	t.Run("interior has two neighbors", func(t *testing.T) {
		neighbors := LinearNeighbors(cards, 1)
		require.Len(t, neighbors, 2)
	})
}

func TestGridNeighbors(t *testing.T) {
	cards := drawnSequence(36)

	tests := []struct {
		name      string
		index     int
		wantCount int
		wantPos   []int
	}{
		{name: "top-left corner", index: 0, wantCount: 2, wantPos: []int{4, 1}},
		{name: "top-right corner", index: 3, wantCount: 2, wantPos: []int{7, 2}},
		{name: "bottom-left corner", index: 32, wantCount: 2, wantPos: []int{28, 33}},
		{name: "interior", index: 17, wantCount: 4, wantPos: []int{13, 21, 16, 18}},
		{name: "top edge", index: 1, wantCount: 3, wantPos: []int{5, 0, 2}},
		{name: "left edge", index: 4, wantCount: 3, wantPos: []int{0, 8, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neighbors := GridNeighbors(cards, tt.index)
			require.Len(t, neighbors, tt.wantCount)

			positions := make([]int, len(neighbors))
			for i, n := range neighbors {
				positions[i] = n.Position
			}
			assert.ElementsMatch(t, tt.wantPos, positions)
		})
	}

	t.Run("unoccupied positions are skipped", func(t *testing.T) {
		partial := []model.DrawnCard{
			{CardID: 1, Position: 0},
			{CardID: 2, Position: 1},
		}
		neighbors := GridNeighbors(partial, 0)
		require.Len(t, neighbors, 1)
		assert.Equal(t, 1, neighbors[0].Position)
	})
}

func TestCombinationMeaning(t *testing.T) {
	rider := &model.Card{
		ID: 1, Name: "Rider", Keywords: []string{"news"}, Meaning: "News arrives.",
		Combos: []model.Combo{
			{WithCardID: 24, Meaning: "a message of love"},
		},
	}
	heart := &model.Card{ID: 24, Name: "Heart", Keywords: []string{"love"}, Meaning: "Love."}

	t.Run("curated pair", func(t *testing.T) {
		assert.Equal(t, "a message of love", CombinationMeaning(rider, heart))
	})

	t.Run("lookup is asymmetric", func(t *testing.T) {
		// Heart carries no entry toward Rider, and the reverse entry is
		// never substituted.
		assert.Equal(t, comboFallback, CombinationMeaning(heart, rider))
	})

	t.Run("missing pair falls back", func(t *testing.T) {
		tower := &model.Card{ID: 19, Name: "Tower", Keywords: []string{"solitude"}, Meaning: "Standing apart."}
		assert.Equal(t, comboFallback, CombinationMeaning(rider, tower))
	})

	t.Run("nil cards fall back", func(t *testing.T) {
		assert.Equal(t, comboFallback, CombinationMeaning(nil, heart))
	})
}

func TestNeighborsDispatch(t *testing.T) {
	gt, err := ByID(GrandTableau)
	require.NoError(t, err)
	ppf, err := ByID(PastPresentFuture)
	require.NoError(t, err)

	cards := drawnSequence(36)
	assert.Len(t, Neighbors(gt, cards, 17), 4)
	assert.Len(t, Neighbors(ppf, drawnSequence(3), 1), 2)
}
