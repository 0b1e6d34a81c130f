// Package share encodes completed readings as compact URL-safe codes so a
// reading can be reproduced exactly from a link.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/sibylline-app/sibyl/internal/model"
)

// payload is the wire shape of a share code. Field names are part of the
// code format and must stay stable.
type payload struct {
	Title    string        `json:"title,omitempty"`
	Question string        `json:"question,omitempty"`
	Layout   string        `json:"layout"`
	Subtype  string        `json:"subtype"`
	Cards    []cardPayload `json:"cards"`
}

type cardPayload struct {
	ID       int  `json:"id"`
	Position int  `json:"pos"`
	Reversed bool `json:"rev,omitempty"`
}

// Encode packs a reading's identifying fields into a URL-safe code.
func Encode(title, question string, layout model.LayoutType, subtype string, cards []model.DrawnCard) (string, error) {
	if len(cards) == 0 {
		return "", fmt.Errorf("cannot encode a reading with no cards")
	}
	p := payload{
		Title:    title,
		Question: question,
		Layout:   string(layout),
		Subtype:  subtype,
		Cards:    make([]cardPayload, len(cards)),
	}
	for i, c := range cards {
		p.Cards[i] = cardPayload{ID: c.CardID, Position: c.Position, Reversed: c.Reversed}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decoded is the reading reconstructed from a share code.
type Decoded struct {
	Title    string
	Question string
	Layout   model.LayoutType
	Subtype  string
	Cards    []model.DrawnCard
}

// Decode unpacks a share code produced by Encode.
func Decode(code string) (*Decoded, error) {
	data, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("invalid share code: %w", err)
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid share payload: %w", err)
	}
	if len(p.Cards) == 0 {
		return nil, fmt.Errorf("share code contains no cards")
	}
	layout := model.LayoutType(p.Layout)
	switch layout {
	case model.LayoutLinear, model.LayoutGrid:
	default:
		return nil, fmt.Errorf("share code has unknown layout %q", p.Layout)
	}
	d := &Decoded{
		Title:    p.Title,
		Question: p.Question,
		Layout:   layout,
		Subtype:  p.Subtype,
		Cards:    make([]model.DrawnCard, len(p.Cards)),
	}
	for i, c := range p.Cards {
		if c.ID < 1 || c.ID > model.DeckSize {
			return nil, fmt.Errorf("share code references card %d outside the deck", c.ID)
		}
		d.Cards[i] = model.DrawnCard{CardID: c.ID, Position: c.Position, Reversed: c.Reversed}
	}
	return d, nil
}
