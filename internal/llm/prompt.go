package llm

import (
	"fmt"
	"strings"

	"github.com/sibylline-app/sibyl/internal/model"
)

// BuildReadingPrompt composes the user prompt for narrative generation from
// the question, the drawn cards, and the spread they were laid in.
func BuildReadingPrompt(question string, drawn []model.DrawnCard, catalog []model.Card, def *model.SpreadDefinition) string {
	byID := make(map[int]*model.Card, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	var cardLines strings.Builder
	for _, dc := range drawn {
		card, ok := byID[dc.CardID]
		if !ok {
			continue
		}

		label := positionLabel(def, dc.Position)
		meaning := card.Meaning
		orientation := ""
		if dc.Reversed {
			orientation = " (reversed)"
			if card.ReversedMeaning != "" {
				meaning = card.ReversedMeaning
			}
		}

		cardLines.WriteString(fmt.Sprintf("- %s: %s%s — %s\n", label, card.Name, orientation, meaning))
	}

	return fmt.Sprintf(`The querent asks: %q

Spread: %s (%d cards)

Cards drawn:
%s
Interpret the spread as a whole, reading neighboring cards together in the traditional Lenormand manner.`,
		question, def.Name, def.CardCount, cardLines.String())
}

func positionLabel(def *model.SpreadDefinition, index int) string {
	if def.Layout == model.LayoutGrid {
		row, col := model.GridCoord(index)
		return fmt.Sprintf("Row %d, Column %d", row+1, col+1)
	}
	if index >= 0 && index < len(def.Positions) {
		return def.Positions[index].Label
	}
	return fmt.Sprintf("Position %d", index+1)
}
