package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
)

func TestDraw(t *testing.T) {
	catalog, err := Catalog()
	require.NoError(t, err)

	t.Run("returns distinct cards with sequential positions", func(t *testing.T) {
		for _, count := range []int{1, 3, 5, 9, 36} {
			drawn, drawErr := Draw(catalog, count)
			require.NoError(t, drawErr)
			require.Len(t, drawn, count)

			seen := make(map[int]bool, count)
			for i, dc := range drawn {
				assert.Equal(t, i, dc.Position)
				assert.False(t, seen[dc.CardID], "card %d drawn twice", dc.CardID)
				seen[dc.CardID] = true
				assert.GreaterOrEqual(t, dc.CardID, 1)
				assert.LessOrEqual(t, dc.CardID, model.DeckSize)
			}
		}
	})

	t.Run("full draw yields every card exactly once", func(t *testing.T) {
		drawn, drawErr := Draw(catalog, model.DeckSize)
		require.NoError(t, drawErr)

		seen := make(map[int]bool, model.DeckSize)
		for _, dc := range drawn {
			seen[dc.CardID] = true
		}
		assert.Len(t, seen, model.DeckSize)
	})

	t.Run("rejects invalid counts", func(t *testing.T) {
		for _, count := range []int{0, -1, 37, 100} {
			_, drawErr := Draw(catalog, count)
			require.Error(t, drawErr)
			assert.True(t, errors.Is(drawErr, common.ErrInvalidDrawCount))
		}
	})

	t.Run("does not mutate the catalog", func(t *testing.T) {
		before := make([]int, len(catalog))
		for i, c := range catalog {
			before[i] = c.ID
		}

		_, drawErr := Draw(catalog, 36)
		require.NoError(t, drawErr)

		for i, c := range catalog {
			assert.Equal(t, before[i], c.ID)
		}
	})
}

func TestShuffle(t *testing.T) {
	catalog, err := Catalog()
	require.NoError(t, err)

	shuffled := Shuffle(catalog)
	require.Len(t, shuffled, len(catalog))

	// Same multiset of ids.
	seen := make(map[int]bool, len(shuffled))
	for _, c := range shuffled {
		seen[c.ID] = true
	}
	assert.Len(t, seen, len(catalog))

	// The original order is untouched.
	for i, c := range catalog {
		assert.Equal(t, i+1, c.ID)
	}
}

func TestCatalog(t *testing.T) {
	catalog, err := Catalog()
	require.NoError(t, err)
	require.Len(t, catalog, model.DeckSize)

	t.Run("ids are dense 1..36", func(t *testing.T) {
		for i, c := range catalog {
			assert.Equal(t, i+1, c.ID)
		}
	})

	t.Run("combos reference existing cards", func(t *testing.T) {
		for _, c := range catalog {
			for _, combo := range c.Combos {
				_, lookupErr := ByID(catalog, combo.WithCardID)
				assert.NoError(t, lookupErr, "card %d combo target %d", c.ID, combo.WithCardID)
			}
		}
	})

	t.Run("significators have no reversed meaning", func(t *testing.T) {
		man, err := ByID(catalog, 28)
		require.NoError(t, err)
		assert.Empty(t, man.ReversedMeaning)
	})
}

func TestByID(t *testing.T) {
	catalog, err := Catalog()
	require.NoError(t, err)

	card, err := ByID(catalog, 33)
	require.NoError(t, err)
	assert.Equal(t, "Key", card.Name)

	_, err = ByID(catalog, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
