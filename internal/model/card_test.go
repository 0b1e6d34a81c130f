package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValidate(t *testing.T) {
	valid := Card{
		ID:       1,
		Name:     "Rider",
		Number:   1,
		Keywords: []string{"news", "messages"},
		Meaning:  "News arrives quickly.",
	}

	tests := []struct {
		name    string
		modify  func(*Card)
		wantErr string
	}{
		{
			name:   "valid card",
			modify: func(*Card) {},
		},
		{
			name:    "id too low",
			modify:  func(c *Card) { c.ID = 0 },
			wantErr: "out of range",
		},
		{
			name:    "id too high",
			modify:  func(c *Card) { c.ID = 37 },
			wantErr: "out of range",
		},
		{
			name:    "missing name",
			modify:  func(c *Card) { c.Name = "" },
			wantErr: "no name",
		},
		{
			name:    "missing meaning",
			modify:  func(c *Card) { c.Meaning = "" },
			wantErr: "no meaning",
		},
		{
			name:    "missing keywords",
			modify:  func(c *Card) { c.Keywords = nil },
			wantErr: "no keywords",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := valid
			tt.modify(&card)
			err := card.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCardComboWith(t *testing.T) {
	card := Card{
		ID:       1,
		Name:     "Rider",
		Keywords: []string{"news"},
		Meaning:  "News arrives.",
		Combos: []Combo{
			{WithCardID: 24, Meaning: "a love letter or romantic message"},
			{WithCardID: 7, Meaning: "deceptive news"},
		},
	}

	meaning, ok := card.ComboWith(24)
	require.True(t, ok)
	assert.Equal(t, "a love letter or romantic message", meaning)

	// Absent pairs are a normal miss, not an error.
	_, ok = card.ComboWith(36)
	assert.False(t, ok)
}
