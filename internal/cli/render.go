package cli

import (
	"fmt"
	"strings"

	"github.com/sibylline-app/sibyl/internal/deck"
	"github.com/sibylline-app/sibyl/internal/model"
	"github.com/sibylline-app/sibyl/internal/spread"
)

// CardLabel renders a drawn card's display name, marking reversal.
func CardLabel(card *model.Card, reversed bool) string {
	label := CardStyle.Render(card.Name)
	if reversed {
		label += " " + ReversedStyle.Render(ReversedMark)
	}
	return label
}

// RenderDrawnCards lays out a draw for the terminal. Linear spreads get one
// labeled line per position; grid spreads are drawn row by row.
func RenderDrawnCards(def *model.SpreadDefinition, drawn []model.DrawnCard, catalog []model.Card) string {
	if def.Layout == model.LayoutGrid {
		return renderGrid(drawn, catalog)
	}

	var b strings.Builder
	for _, dc := range drawn {
		card, err := deck.ByID(catalog, dc.CardID)
		if err != nil {
			continue
		}
		label := fmt.Sprintf("Position %d", dc.Position+1)
		if pm, pmErr := spread.PositionMeaning(def.ID, dc.Position); pmErr == nil && pm.Label != "" {
			label = pm.Label
		}
		fmt.Fprintf(&b, "%s  %s\n", PositionStyle.Render(label+":"), CardLabel(card, dc.Reversed))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGrid(drawn []model.DrawnCard, catalog []model.Card) string {
	names := make([]string, model.GridRows*model.GridCols)
	for _, dc := range drawn {
		card, err := deck.ByID(catalog, dc.CardID)
		if err != nil || dc.Position < 0 || dc.Position >= len(names) {
			continue
		}
		name := card.Name
		if dc.Reversed {
			name += " " + ReversedMark
		}
		names[dc.Position] = name
	}

	width := 0
	for _, n := range names {
		if len(n) > width {
			width = len(n)
		}
	}

	var b strings.Builder
	for row := 0; row < model.GridRows; row++ {
		cells := make([]string, model.GridCols)
		for col := 0; col < model.GridCols; col++ {
			cells[col] = fmt.Sprintf("%-*s", width, names[row*model.GridCols+col])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderCombinations lists the pairwise meanings of neighboring cards.
// Each adjacent pair appears once, read left to right in draw order.
func RenderCombinations(def *model.SpreadDefinition, drawn []model.DrawnCard, catalog []model.Card) string {
	var b strings.Builder
	for _, dc := range drawn {
		card, err := deck.ByID(catalog, dc.CardID)
		if err != nil {
			continue
		}
		for _, neighbor := range spread.Neighbors(def, drawn, dc.Position) {
			if neighbor.Position <= dc.Position {
				continue
			}
			other, otherErr := deck.ByID(catalog, neighbor.CardID)
			if otherErr != nil {
				continue
			}
			pair := CardStyle.Render(card.Name) + " + " + CardStyle.Render(other.Name)
			fmt.Fprintf(&b, "%s: %s\n", pair, spread.CombinationMeaning(card, other))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderNarrative formats the four-field reading for display.
func RenderNarrative(n model.ParsedReading) string {
	sections := []struct {
		label string
		text  string
	}{
		{"Story", n.Storyline},
		{"Risk", n.Risk},
		{"Timing", n.Timing},
		{"Guidance", n.Action},
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(TitleStyle.UnsetMargins().Render(s.label))
		b.WriteString("\n")
		b.WriteString(s.text)
	}
	return b.String()
}
