package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sibylline-app/sibyl/internal/cli"
	"github.com/sibylline-app/sibyl/internal/model"
	"github.com/sibylline-app/sibyl/internal/spread"
)

func spreadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spreads",
		Short: "List available spreads",
		RunE:  runSpreads,
	}
}

func runSpreads(_ *cobra.Command, _ []string) error {
	fmt.Println(cli.FormatTitle("Spreads"))
	for _, def := range spread.All() {
		fmt.Printf("%-28s %2d cards  %s\n", def.ID, def.CardCount, def.Name)
		if def.Layout == model.LayoutGrid {
			fmt.Println(cli.StyleSubtle(fmt.Sprintf("%-28s read as a %dx%d tableau", "", model.GridRows, model.GridCols)))
			continue
		}
		for _, pos := range def.Positions {
			fmt.Println(cli.StyleSubtle(fmt.Sprintf("%-28s %d. %s: %s", "", pos.Index+1, pos.Label, pos.Description)))
		}
	}
	return nil
}
