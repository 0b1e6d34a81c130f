package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sibylline-app/sibyl/internal/cli"
	"github.com/sibylline-app/sibyl/internal/deck"
	"github.com/sibylline-app/sibyl/internal/spread"
)

func drawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw cards for a spread",
		Long: `Draw a randomized, non-repeating set of cards for a spread.

Examples:
  sibyl draw                          # 3-card sentence spread
  sibyl draw --spread horseshoe       # 7-card horseshoe
  sibyl draw --spread grand-tableau   # full 36-card tableau`,
		RunE: runDraw,
	}

	cmd.Flags().StringP("spread", "s", spread.Sentence, "Spread to draw (see 'sibyl spreads')")
	_ = viper.BindPFlag("draw.spread", cmd.Flags().Lookup("spread"))

	return cmd
}

func runDraw(_ *cobra.Command, _ []string) error {
	spreadID := viper.GetString("draw.spread")

	def, err := spread.ByID(spreadID)
	if err != nil {
		return err
	}
	catalog, err := deck.Catalog()
	if err != nil {
		return fmt.Errorf("failed to load card catalog: %w", err)
	}
	drawn, err := deck.Draw(catalog, def.CardCount)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle(def.Name))
	fmt.Println(cli.RenderDrawnCards(def, drawn, catalog))
	return nil
}
