package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sibylline-app/sibyl/internal/cli"
	"github.com/sibylline-app/sibyl/internal/deck"
	"github.com/sibylline-app/sibyl/internal/spread"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "Show saved readings",
		Long: `List recent readings, or show one saved reading in full.

Examples:
  sibyl history
  sibyl history --limit 25
  sibyl history 7`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}

	cmd.Flags().IntP("limit", "n", 10, "Number of readings to list")
	_ = viper.BindPFlag("history.limit", cmd.Flags().Lookup("limit"))

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if len(args) == 1 {
		var id int64
		if _, scanErr := fmt.Sscanf(args[0], "%d", &id); scanErr != nil {
			return fmt.Errorf("invalid reading id %q", args[0])
		}

		reading, getErr := db.GetReading(ctx, id)
		if getErr != nil {
			return getErr
		}

		def, defErr := spread.ByID(reading.SpreadID)
		if defErr != nil {
			return defErr
		}
		catalog, catErr := deck.Catalog()
		if catErr != nil {
			return fmt.Errorf("failed to load card catalog: %w", catErr)
		}

		fmt.Println(cli.FormatTitle(reading.Title))
		fmt.Println(cli.StyleSubtle(reading.CreatedAt.Local().Format("2006-01-02 15:04") + "  " + reading.Question))
		fmt.Println()
		fmt.Println(cli.RenderDrawnCards(def, reading.Cards, catalog))
		fmt.Println()
		fmt.Println(cli.RenderNarrative(reading.Narrative))
		return nil
	}

	limit := viper.GetInt("history.limit")
	readings, err := db.ListReadings(ctx, limit)
	if err != nil {
		return err
	}
	if len(readings) == 0 {
		fmt.Println("No readings saved yet.")
		return nil
	}

	fmt.Println(cli.FormatTitle("Reading History"))
	for _, r := range readings {
		fmt.Printf("%4d  %s  %-28s %s\n",
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.SpreadID,
			r.Question)
	}
	return nil
}
