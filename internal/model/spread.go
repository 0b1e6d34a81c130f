package model

import "fmt"

// LayoutType distinguishes the two position topologies.
type LayoutType string

const (
	// LayoutLinear lays cards out in a labeled row.
	LayoutLinear LayoutType = "linear"
	// LayoutGrid lays cards out in the 9x4 Grand Tableau grid.
	LayoutGrid LayoutType = "grid"
)

// Grand Tableau grid dimensions. Position i maps to row i/GridCols,
// column i%GridCols.
const (
	GridRows = 9
	GridCols = 4
)

// PositionMeaning describes what one slot of a linear spread stands for.
type PositionMeaning struct {
	Index       int
	Label       string
	Description string
}

// SpreadDefinition is an immutable catalog entry describing a named layout.
type SpreadDefinition struct {
	ID        string
	Name      string
	Subtype   string
	Layout    LayoutType
	CardCount int
	Positions []PositionMeaning
}

// Validate ensures the spread's positional data is internally consistent.
func (s *SpreadDefinition) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("spread has no id")
	}
	switch s.Layout {
	case LayoutLinear:
		if len(s.Positions) != s.CardCount {
			return fmt.Errorf("spread %s: %d positions for %d cards", s.ID, len(s.Positions), s.CardCount)
		}
		for i, p := range s.Positions {
			if p.Index != i {
				return fmt.Errorf("spread %s: position %d has index %d", s.ID, i, p.Index)
			}
			if p.Label == "" {
				return fmt.Errorf("spread %s: position %d has no label", s.ID, i)
			}
		}
	case LayoutGrid:
		if s.CardCount != GridRows*GridCols {
			return fmt.Errorf("spread %s: grid layout requires %d cards, has %d", s.ID, GridRows*GridCols, s.CardCount)
		}
	default:
		return fmt.Errorf("spread %s: unknown layout %q", s.ID, s.Layout)
	}
	return nil
}

// GridCoord returns the (row, col) a position occupies in a grid spread.
func GridCoord(index int) (row, col int) {
	return index / GridCols, index % GridCols
}
