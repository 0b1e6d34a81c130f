// Package deck holds the Lenormand card catalog and the randomized draw
// primitives used to lay a spread.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
)

// reversalChance is the independent probability that a drawn card lands
// reversed.
const reversalChance = 0.30

// Provider supplies the card catalog. The static catalog never fails, but
// alternative providers (a database, a remote service) may.
type Provider interface {
	AllCards() ([]model.Card, error)
}

// Draw selects count cards uniformly at random without replacement and
// assigns spread positions in draw order. Each drawn card is independently
// reversed with 30% probability. Only the requested subset is randomized;
// the catalog itself is never shuffled or mutated.
func Draw(catalog []model.Card, count int) ([]model.DrawnCard, error) {
	if count < 1 || count > len(catalog) {
		return nil, fmt.Errorf("%w: %d requested from a catalog of %d", common.ErrInvalidDrawCount, count, len(catalog))
	}

	working := make([]model.Card, len(catalog))
	copy(working, catalog)

	drawn := make([]model.DrawnCard, 0, count)
	for position := 0; position < count; position++ {
		i := rand.Intn(len(working))
		card := working[i]
		working = append(working[:i], working[i+1:]...)

		drawn = append(drawn, model.DrawnCard{
			CardID:   card.ID,
			Position: position,
			Reversed: rand.Float64() < reversalChance,
		})
	}

	return drawn, nil
}

// Shuffle returns a uniform Fisher-Yates permutation of the catalog. It
// exists for display purposes only; Draw uses its own randomness and never
// depends on a prior Shuffle.
func Shuffle(catalog []model.Card) []model.Card {
	shuffled := make([]model.Card, len(catalog))
	copy(shuffled, catalog)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// ByID returns the catalog card with the given id.
func ByID(catalog []model.Card, id int) (*model.Card, error) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], nil
		}
	}
	return nil, fmt.Errorf("card %d: %w", id, common.ErrNotFound)
}
