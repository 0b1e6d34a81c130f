package spread

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
)

func TestRegistryIsValid(t *testing.T) {
	require.NoError(t, Validate())
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 11)

	// Fixed iteration order: 3-card variants first, Grand Tableau last.
	assert.Equal(t, Sentence, all[0].ID)
	assert.Equal(t, GrandTableau, all[len(all)-1].ID)

	counts := map[int]int{}
	for _, def := range all {
		counts[def.CardCount]++
	}
	assert.Equal(t, 5, counts[3])
	assert.Equal(t, 2, counts[5])
	assert.Equal(t, 2, counts[7])
	assert.Equal(t, 1, counts[9])
	assert.Equal(t, 1, counts[36])
}

func TestByID(t *testing.T) {
	def, err := ByID(Horseshoe)
	require.NoError(t, err)
	assert.Equal(t, 7, def.CardCount)

	_, err = ByID("celtic-cross")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnknownSpread))
}

func TestPositionMeaning(t *testing.T) {
	t.Run("linear labels", func(t *testing.T) {
		pm, err := PositionMeaning(PastPresentFuture, 1)
		require.NoError(t, err)
		assert.Equal(t, "Present", pm.Label)
	})

	t.Run("out of range resolves empty", func(t *testing.T) {
		pm, err := PositionMeaning(PastPresentFuture, 7)
		require.NoError(t, err)
		assert.Empty(t, pm.Label)

		pm, err = PositionMeaning(PastPresentFuture, -1)
		require.NoError(t, err)
		assert.Empty(t, pm.Label)
	})

	t.Run("grid positions derive from coordinates", func(t *testing.T) {
		pm, err := PositionMeaning(GrandTableau, 17)
		require.NoError(t, err)
		assert.Equal(t, "Row 5, Column 2", pm.Label)
	})

	t.Run("unknown spread errors", func(t *testing.T) {
		_, err := PositionMeaning("missing", 0)
		require.Error(t, err)
	})
}

func TestGrandTableauShape(t *testing.T) {
	def, err := ByID(GrandTableau)
	require.NoError(t, err)
	assert.Equal(t, model.LayoutGrid, def.Layout)
	assert.Equal(t, model.GridRows*model.GridCols, def.CardCount)
}
