package spread

import (
	"github.com/sibylline-app/sibyl/internal/model"
)

// comboFallback is returned when no combination is curated for a pair.
// Absence of a curated pair is the normal case; only a subset of the 36x35
// directed pairs carries text.
const comboFallback = "These cards work together to shape the reading's message."

// LinearNeighbors returns the cards immediately before and after the given
// position. Boundary positions simply have fewer neighbors.
func LinearNeighbors(cards []model.DrawnCard, index int) []model.DrawnCard {
	var neighbors []model.DrawnCard
	for _, dc := range cards {
		if dc.Position == index-1 || dc.Position == index+1 {
			neighbors = append(neighbors, dc)
		}
	}
	return neighbors
}

// GridNeighbors returns the up/down/left/right neighbors of a Grand Tableau
// position, clipped at the grid edges. A neighbor is included only when a
// drawn card actually occupies the computed position.
func GridNeighbors(cards []model.DrawnCard, index int) []model.DrawnCard {
	row, col := model.GridCoord(index)

	var want []int
	if row > 0 {
		want = append(want, index-model.GridCols)
	}
	if row < model.GridRows-1 {
		want = append(want, index+model.GridCols)
	}
	if col > 0 {
		want = append(want, index-1)
	}
	if col < model.GridCols-1 {
		want = append(want, index+1)
	}

	occupied := make(map[int]model.DrawnCard, len(cards))
	for _, dc := range cards {
		occupied[dc.Position] = dc
	}

	var neighbors []model.DrawnCard
	for _, pos := range want {
		if dc, ok := occupied[pos]; ok {
			neighbors = append(neighbors, dc)
		}
	}
	return neighbors
}

// Neighbors resolves a position's neighbors under the spread's topology.
func Neighbors(def *model.SpreadDefinition, cards []model.DrawnCard, index int) []model.DrawnCard {
	if def.Layout == model.LayoutGrid {
		return GridNeighbors(cards, index)
	}
	return LinearNeighbors(cards, index)
}

// CombinationMeaning resolves the curated pair text read from cardA toward
// cardB. The lookup is directional: traditional combination texts depend on
// which card leads, so the reverse entry is never substituted. A missing
// pair resolves to a generic fallback, never an error.
func CombinationMeaning(cardA, cardB *model.Card) string {
	if cardA == nil || cardB == nil {
		return comboFallback
	}
	if meaning, ok := cardA.ComboWith(cardB.ID); ok {
		return meaning
	}
	return comboFallback
}
