// Package main contains the sibyl CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/sibylline-app/sibyl/internal/classify"
	"github.com/sibylline-app/sibyl/internal/config"
	"github.com/sibylline-app/sibyl/internal/deck"
	"github.com/sibylline-app/sibyl/internal/engine"
	"github.com/sibylline-app/sibyl/internal/llm"
	"github.com/sibylline-app/sibyl/internal/storage"
)

// buildGenerator constructs the AI collaborator from configuration.
// Returns nil when no provider is configured; everything downstream treats
// that as "work locally".
func buildGenerator() (*llm.Generator, error) {
	cfg := llm.Config{
		Provider:    viper.GetString("llm.provider"),
		APIKey:      viper.GetString("llm.api_key"),
		Model:       viper.GetString("llm.model"),
		BaseURL:     viper.GetString("llm.base_url"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		Timeout:     viper.GetInt("llm.timeout"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
		MaxRetries:  viper.GetInt("llm.max_retries"),
	}
	return llm.NewGenerator(cfg, slog.Default())
}

// buildClassifier wires the question classifier, with the generator as the
// optional external collaborator.
func buildClassifier(gen *llm.Generator) *classify.Classifier {
	var external classify.ExternalClassifier
	if gen != nil {
		external = gen
	}
	return classify.NewClassifier(external, slog.Default())
}

// buildReader assembles the full reading engine.
func buildReader(gen *llm.Generator) *engine.Reader {
	var narrator engine.NarrativeGenerator
	if gen != nil {
		narrator = gen
	}
	return engine.New(deck.StaticProvider{}, buildClassifier(gen), narrator, slog.Default())
}

// openStorage opens and migrates the reading history database.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func closeGenerator(gen *llm.Generator) {
	if gen == nil {
		return
	}
	if err := gen.Close(); err != nil {
		slog.Error("Failed to close generator", "error", err)
	}
}
