// Package parse recovers a four-field reading from the free-form text an
// AI generator produces. Structured formats are tried first; anything that
// resists structure is treated as prose. Parsing never fails: missing
// fields are backfilled with fixed defaults so callers always receive a
// fully populated result.
package parse

import "github.com/sibylline-app/sibyl/internal/model"

const (
	defaultStoryline = "The cards reveal a story unfolding around your question."
	defaultRisk      = "Trust your intuition and stay aware of potential challenges."
	defaultTiming    = "The timing will become clear as events unfold."
	defaultAction    = "Trust your intuition and follow the guidance revealed."
)

// Spread-aware closing guidance used when no action can be recovered.
var subtypeActions = map[string]string{
	"past-present-future":        "Learn from the past, act in the present, and stay open to the future.",
	"yes-no":                     "Trust the majority of the card meanings to answer your question.",
	"situation-challenge-advice": "Follow the advice position to move through the challenge.",
	"mind-body-spirit":           "Tend to whichever of mind, body, or spirit the cards show out of balance.",
}

const gridAction = "Study the card clusters and their positions for your next step."

type fieldDefaults struct {
	storyline string
	risk      string
	timing    string
	action    string
}

func defaultsFor(layout model.LayoutType, subtype string) fieldDefaults {
	d := fieldDefaults{
		storyline: defaultStoryline,
		risk:      defaultRisk,
		timing:    defaultTiming,
		action:    defaultAction,
	}
	if layout == model.LayoutGrid {
		d.action = gridAction
	} else if a, ok := subtypeActions[subtype]; ok {
		d.action = a
	}
	return d
}

// Defaults returns a fully defaulted result for the given spread. Callers
// with no generator output use it as the base of a locally composed reading.
func Defaults(layout model.LayoutType, subtype string) model.ParsedReading {
	d := defaultsFor(layout, subtype)
	return model.ParsedReading{
		Storyline: d.storyline,
		Risk:      d.risk,
		Timing:    d.timing,
		Action:    d.action,
	}
}

// Reading extracts storyline, risk, timing, and action from raw generator
// output. The spread's layout and subtype only influence the default
// action text used when a field cannot be recovered.
func Reading(raw string, layout model.LayoutType, subtype string) model.ParsedReading {
	defaults := defaultsFor(layout, subtype)

	for _, try := range structuredStrategies {
		parsed := try(raw)
		if parsed == nil {
			continue
		}
		parsed.Raw = raw
		if parsed.Risk == "" {
			parsed.Risk = defaults.risk
		}
		if parsed.Timing == "" {
			parsed.Timing = defaults.timing
		}
		if parsed.Action == "" {
			parsed.Action = defaults.action
		}
		return *parsed
	}

	out := parseUnstructured(raw, defaults)
	out.Raw = raw
	return out
}
