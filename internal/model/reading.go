package model

import "time"

// ParsedReading is the four-field result recovered from a free-text AI
// narrative. Every field is always populated: extraction failures fall back
// to fixed defaults rather than empty strings.
type ParsedReading struct {
	Storyline string
	Risk      string
	Timing    string
	Action    string
	Raw       string
}

// Reading is a completed reading as the CLI saves and shares it.
type Reading struct {
	ID        int64
	CreatedAt time.Time
	Title     string
	Question  string
	SpreadID  string
	Subtype   string
	Cards     []DrawnCard
	Narrative ParsedReading
}
