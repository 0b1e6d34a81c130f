package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/model"
)

// storedCard is the JSON shape cards are persisted in. It matches the
// share-code card format.
type storedCard struct {
	ID       int  `json:"id"`
	Position int  `json:"pos"`
	Reversed bool `json:"rev,omitempty"`
}

// SaveReading persists a completed reading and returns its assigned id.
func (s *SQLiteStorage) SaveReading(ctx context.Context, reading *model.Reading) (int64, error) {
	if reading == nil {
		return 0, fmt.Errorf("reading cannot be nil")
	}
	if len(reading.Cards) == 0 {
		return 0, fmt.Errorf("reading has no cards")
	}

	stored := make([]storedCard, len(reading.Cards))
	for i, c := range reading.Cards {
		stored[i] = storedCard{ID: c.CardID, Position: c.Position, Reversed: c.Reversed}
	}
	cardsJSON, err := json.Marshal(stored)
	if err != nil {
		return 0, fmt.Errorf("failed to encode cards: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO readings (created_at, title, question, spread_id, subtype, cards, storyline, risk, timing, action, raw_narrative)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reading.CreatedAt, reading.Title, reading.Question, reading.SpreadID, reading.Subtype,
		string(cardsJSON),
		reading.Narrative.Storyline, reading.Narrative.Risk, reading.Narrative.Timing,
		reading.Narrative.Action, reading.Narrative.Raw)
	if err != nil {
		return 0, fmt.Errorf("failed to save reading: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get reading id: %w", err)
	}
	return id, nil
}

// GetReading retrieves a single reading by id.
func (s *SQLiteStorage) GetReading(ctx context.Context, id int64) (*model.Reading, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, title, question, spread_id, subtype, cards, storyline, risk, timing, action, raw_narrative
		FROM readings WHERE id = ?`, id)

	reading, err := scanReading(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reading %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reading %d: %w", id, err)
	}
	return reading, nil
}

// ListReadings returns the most recent readings, newest first.
func (s *SQLiteStorage) ListReadings(ctx context.Context, limit int) ([]model.Reading, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, title, question, spread_id, subtype, cards, storyline, risk, timing, action, raw_narrative
		FROM readings ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var readings []model.Reading
	for rows.Next() {
		reading, scanErr := scanReading(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", scanErr)
		}
		readings = append(readings, *reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate readings: %w", err)
	}
	return readings, nil
}

// DeleteReading removes a reading from history.
func (s *SQLiteStorage) DeleteReading(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM readings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reading %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("reading %d: %w", id, common.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(row rowScanner) (*model.Reading, error) {
	var reading model.Reading
	var cardsJSON string
	var raw sql.NullString

	err := row.Scan(&reading.ID, &reading.CreatedAt, &reading.Title, &reading.Question,
		&reading.SpreadID, &reading.Subtype, &cardsJSON,
		&reading.Narrative.Storyline, &reading.Narrative.Risk,
		&reading.Narrative.Timing, &reading.Narrative.Action, &raw)
	if err != nil {
		return nil, err
	}
	reading.Narrative.Raw = raw.String

	var stored []storedCard
	if err := json.Unmarshal([]byte(cardsJSON), &stored); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	reading.Cards = make([]model.DrawnCard, len(stored))
	for i, c := range stored {
		reading.Cards[i] = model.DrawnCard{CardID: c.ID, Position: c.Position, Reversed: c.Reversed}
	}
	return &reading, nil
}
