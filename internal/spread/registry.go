// Package spread catalogs the named layouts and resolves neighbor and
// combination lookups within them.
package spread

import (
	"fmt"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
)

// Spread ids. The Grand Tableau is the only grid layout; everything else is
// a labeled row.
const (
	Sentence                 = "sentence"
	PastPresentFuture        = "past-present-future"
	YesNo                    = "yes-no"
	SituationChallengeAdvice = "situation-challenge-advice"
	MindBodySpirit           = "mind-body-spirit"
	Timeline                 = "timeline"
	Cross                    = "cross"
	Relationship             = "relationship"
	Horseshoe                = "horseshoe"
	NineBox                  = "nine-box"
	GrandTableau             = "grand-tableau"
)

// registry holds every spread in its fixed, documented order. Iteration
// order is meaningful: listings and any tie-breaking follow it.
var registry = []model.SpreadDefinition{
	{
		ID: Sentence, Name: "Three-Card Sentence", Subtype: "sentence",
		Layout: model.LayoutLinear, CardCount: 3,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "Subject", Description: "Who or what the matter centers on"},
			{Index: 1, Label: "Action", Description: "What is happening or being done"},
			{Index: 2, Label: "Outcome", Description: "Where the sentence resolves"},
		},
	},
	{
		ID: PastPresentFuture, Name: "Past, Present, Future", Subtype: "past-present-future",
		Layout: model.LayoutLinear, CardCount: 3,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "Past", Description: "What shaped the situation"},
			{Index: 1, Label: "Present", Description: "Where things stand now"},
			{Index: 2, Label: "Future", Description: "Where things are heading"},
		},
	},
	{
		ID: YesNo, Name: "Yes or No", Subtype: "yes-no",
		Layout: model.LayoutLinear, CardCount: 3,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "For", Description: "What speaks in favor"},
			{Index: 1, Label: "Against", Description: "What speaks against"},
			{Index: 2, Label: "Verdict", Description: "The leaning of the answer"},
		},
	},
	{
		ID: SituationChallengeAdvice, Name: "Situation, Challenge, Advice", Subtype: "situation-challenge-advice",
		Layout: model.LayoutLinear, CardCount: 3,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "Situation", Description: "The matter as it stands"},
			{Index: 1, Label: "Challenge", Description: "What stands in the way"},
			{Index: 2, Label: "Advice", Description: "The recommended approach"},
		},
	},
	{
		ID: MindBodySpirit, Name: "Mind, Body, Spirit", Subtype: "mind-body-spirit",
		Layout: model.LayoutLinear, CardCount: 3,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "Mind", Description: "Your mental state"},
			{Index: 1, Label: "Body", Description: "Your physical state"},
			{Index: 2, Label: "Spirit", Description: "Your inner life"},
		},
	},
	{
		ID: Timeline, Name: "Five-Card Timeline", Subtype: "timeline",
		Layout: model.LayoutLinear, CardCount: 5,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "Distant Past", Description: "The root of the matter"},
			{Index: 1, Label: "Recent Past", Description: "What just happened"},
			{Index: 2, Label: "Present", Description: "The current moment"},
			{Index: 3, Label: "Near Future", Description: "What comes next"},
			{Index: 4, Label: "Outcome", Description: "Where the timeline lands"},
		},
	},
	{
		ID: Cross, Name: "Five-Card Cross", Subtype: "cross",
		Layout: model.LayoutLinear, CardCount: 5,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "Heart of the Matter", Description: "The center of the situation"},
			{Index: 1, Label: "What Crosses You", Description: "The opposing force"},
			{Index: 2, Label: "Foundation", Description: "What lies beneath"},
			{Index: 3, Label: "Recent Influence", Description: "What is passing away"},
			{Index: 4, Label: "Direction", Description: "Where the matter points"},
		},
	},
	{
		ID: Relationship, Name: "Relationship Mirror", Subtype: "relationship",
		Layout: model.LayoutLinear, CardCount: 7,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "You", Description: "Your place in the bond"},
			{Index: 1, Label: "The Other", Description: "Their place in the bond"},
			{Index: 2, Label: "The Connection", Description: "What joins you"},
			{Index: 3, Label: "Your Hopes", Description: "What you want from it"},
			{Index: 4, Label: "Their Hopes", Description: "What they want from it"},
			{Index: 5, Label: "The Obstacle", Description: "What strains the bond"},
			{Index: 6, Label: "Where It Leads", Description: "The likely course"},
		},
	},
	{
		ID: Horseshoe, Name: "Seven-Card Horseshoe", Subtype: "horseshoe",
		Layout: model.LayoutLinear, CardCount: 7,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "Past", Description: "What brought you here"},
			{Index: 1, Label: "Present", Description: "The current state"},
			{Index: 2, Label: "Hidden Influences", Description: "What works unseen"},
			{Index: 3, Label: "Obstacles", Description: "What resists you"},
			{Index: 4, Label: "Surroundings", Description: "People and circumstances around you"},
			{Index: 5, Label: "Advice", Description: "The best course of action"},
			{Index: 6, Label: "Outcome", Description: "The probable result"},
		},
	},
	{
		ID: NineBox, Name: "Nine-Card Box", Subtype: "nine-box",
		Layout: model.LayoutLinear, CardCount: 9,
		Positions: []model.PositionMeaning{
			{Index: 0, Label: "Past Influence", Description: "What shaped the matter"},
			{Index: 1, Label: "Present Focus", Description: "What occupies the center"},
			{Index: 2, Label: "Future Influence", Description: "What approaches"},
			{Index: 3, Label: "Your Mindset", Description: "How you think about it"},
			{Index: 4, Label: "The Heart", Description: "The card the reading turns on"},
			{Index: 5, Label: "Outside Views", Description: "How others see it"},
			{Index: 6, Label: "Foundation", Description: "What supports you"},
			{Index: 7, Label: "Hopes and Fears", Description: "What you carry into it"},
			{Index: 8, Label: "Resolution", Description: "How the box closes"},
		},
	},
	{
		ID: GrandTableau, Name: "Grand Tableau", Subtype: "grand-tableau",
		Layout: model.LayoutGrid, CardCount: 36,
	},
}

// All returns every spread definition in registry order.
func All() []model.SpreadDefinition {
	out := make([]model.SpreadDefinition, len(registry))
	copy(out, registry)
	return out
}

// ByID returns the spread with the given id.
func ByID(id string) (*model.SpreadDefinition, error) {
	for i := range registry {
		if registry[i].ID == id {
			return &registry[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", common.ErrUnknownSpread, id)
}

// PositionMeaning returns the label and description for one slot of a
// spread. Grid spreads derive their semantics from grid coordinates instead
// of a label list; out-of-range indexes resolve to an empty meaning, not an
// error.
func PositionMeaning(spreadID string, index int) (model.PositionMeaning, error) {
	def, err := ByID(spreadID)
	if err != nil {
		return model.PositionMeaning{}, err
	}

	if index < 0 || index >= def.CardCount {
		return model.PositionMeaning{}, nil
	}

	if def.Layout == model.LayoutGrid {
		row, col := model.GridCoord(index)
		return model.PositionMeaning{
			Index:       index,
			Label:       fmt.Sprintf("Row %d, Column %d", row+1, col+1),
			Description: "Read by its neighbors in the tableau",
		}, nil
	}

	return def.Positions[index], nil
}

// Validate checks every registry entry. Called from tests; the registry is
// static data and a bad entry is a programming error.
func Validate() error {
	for i := range registry {
		if err := registry[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
