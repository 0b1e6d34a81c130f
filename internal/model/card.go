// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// Combo holds the curated interpretation for this card appearing near another
// specific card. Combos are directional: the entry lives on the card the pair
// is read from, and no reverse entry is implied.
type Combo struct {
	WithCardID int
	Meaning    string
}

// Card is an immutable catalog entry for one of the 36 Lenormand cards.
type Card struct {
	ID              int
	Name            string
	Number          int
	Keywords        []string
	Meaning         string
	ReversedMeaning string
	Combos          []Combo
}

// Validate ensures the Card has valid catalog data.
func (c *Card) Validate() error {
	if c.ID < 1 || c.ID > DeckSize {
		return fmt.Errorf("card id %d out of range 1..%d", c.ID, DeckSize)
	}
	if c.Name == "" {
		return fmt.Errorf("card %d has no name", c.ID)
	}
	if c.Meaning == "" {
		return fmt.Errorf("card %d has no meaning", c.ID)
	}
	if len(c.Keywords) == 0 {
		return fmt.Errorf("card %d has no keywords", c.ID)
	}
	return nil
}

// ComboWith returns the combination meaning keyed from this card toward the
// given card id, if one is curated.
func (c *Card) ComboWith(cardID int) (string, bool) {
	for _, combo := range c.Combos {
		if combo.WithCardID == cardID {
			return combo.Meaning, true
		}
	}
	return "", false
}

// DeckSize is the number of cards in a Lenormand deck.
const DeckSize = 36

// DrawnCard is a card as it appears in a single reading: which catalog card,
// where it sits in the spread, and whether it landed reversed. It is never
// persisted by the engine itself.
type DrawnCard struct {
	CardID   int
	Position int
	Reversed bool
}
