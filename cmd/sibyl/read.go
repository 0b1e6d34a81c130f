package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sibylline-app/sibyl/internal/cli"
	"github.com/sibylline-app/sibyl/internal/deck"
	"github.com/sibylline-app/sibyl/internal/share"
	"github.com/sibylline-app/sibyl/internal/spread"
)

func readCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <question>",
		Short: "Run a full reading",
		Long: `Run a complete reading: pick a spread for the question (or use the one
given), draw the cards, and narrate them. With an AI collaborator
configured the narrative comes from it; otherwise it is composed from the
cards' own meanings.

The reading is saved to history and printed with a share code.

Examples:
  sibyl read "Should I take the new job offer?"
  sibyl read "How does this year look?" --spread timeline
  sibyl read "Quick check-in" --no-save`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRead,
	}

	cmd.Flags().StringP("spread", "s", "", "Spread to use instead of classifying the question")
	cmd.Flags().Bool("no-save", false, "Don't save the reading to history")
	_ = viper.BindPFlag("read.spread", cmd.Flags().Lookup("spread"))
	_ = viper.BindPFlag("read.no_save", cmd.Flags().Lookup("no-save"))

	return cmd
}

func runRead(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	question := strings.Join(args, " ")
	spreadID := viper.GetString("read.spread")
	noSave := viper.GetBool("read.no_save")

	gen, err := buildGenerator()
	if err != nil {
		return fmt.Errorf("failed to configure AI collaborator: %w", err)
	}
	defer closeGenerator(gen)

	reading, err := buildReader(gen).Compose(ctx, question, spreadID)
	if err != nil {
		return err
	}

	def, err := spread.ByID(reading.SpreadID)
	if err != nil {
		return err
	}
	catalog, err := deck.Catalog()
	if err != nil {
		return fmt.Errorf("failed to load card catalog: %w", err)
	}

	fmt.Println(cli.FormatTitle(reading.Title))
	fmt.Println(cli.StyleSubtle(reading.Question))
	fmt.Println()
	fmt.Println(cli.RenderDrawnCards(def, reading.Cards, catalog))
	if combos := cli.RenderCombinations(def, reading.Cards, catalog); combos != "" {
		fmt.Println()
		fmt.Println(cli.StyleTitle("Combinations"))
		fmt.Println(combos)
	}
	fmt.Println()
	fmt.Println(cli.RenderNarrative(reading.Narrative))

	if !noSave {
		db, dbErr := openStorage(ctx)
		if dbErr != nil {
			slog.Warn("History unavailable, reading not saved", "error", dbErr)
		} else {
			defer func() { _ = db.Close() }()
			id, saveErr := db.SaveReading(ctx, reading)
			if saveErr != nil {
				slog.Warn("Failed to save reading", "error", saveErr)
			} else {
				fmt.Println()
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("saved as reading %d", id)))
			}
		}
	}

	code, err := share.Encode(reading.Title, reading.Question, def.Layout, def.Subtype, reading.Cards)
	if err != nil {
		return fmt.Errorf("failed to build share code: %w", err)
	}
	fmt.Println()
	fmt.Println(cli.StyleSubtle("share code: " + code))
	return nil
}
