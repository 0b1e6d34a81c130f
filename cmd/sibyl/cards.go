package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sibylline-app/sibyl/internal/cli"
	"github.com/sibylline-app/sibyl/internal/common"
	"github.com/sibylline-app/sibyl/internal/deck"
	"github.com/sibylline-app/sibyl/internal/model"
)

func cardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cards [card]",
		Short: "List the deck, or show one card in detail",
		Long: `List the 36-card deck, or show a single card's meanings and
combinations. Cards can be named by number or name.

Examples:
  sibyl cards
  sibyl cards 22
  sibyl cards rider`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCards,
	}
}

func runCards(_ *cobra.Command, args []string) error {
	catalog, err := deck.Catalog()
	if err != nil {
		return fmt.Errorf("failed to load card catalog: %w", err)
	}

	if len(args) == 0 {
		fmt.Println(cli.FormatTitle("The Deck"))
		for _, card := range catalog {
			fmt.Printf("%2d. %-12s %s\n", card.Number, card.Name, cli.StyleSubtle(strings.Join(card.Keywords, ", ")))
		}
		return nil
	}

	card, err := findCard(catalog, args[0])
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("%d. %s", card.Number, card.Name)))
	fmt.Println(card.Meaning)
	if card.ReversedMeaning != "" {
		fmt.Println(cli.StyleSubtle("Reversed: " + card.ReversedMeaning))
	}
	if len(card.Combos) > 0 {
		fmt.Println()
		fmt.Println(cli.StyleTitle("Combinations"))
		for _, combo := range card.Combos {
			with, comboErr := deck.ByID(catalog, combo.WithCardID)
			if comboErr != nil {
				continue
			}
			fmt.Printf("with %-12s %s\n", with.Name+":", combo.Meaning)
		}
	}
	return nil
}

func findCard(catalog []model.Card, key string) (*model.Card, error) {
	if id, err := strconv.Atoi(key); err == nil {
		return deck.ByID(catalog, id)
	}
	name := strings.ToLower(strings.TrimSpace(key))
	for i := range catalog {
		if strings.ToLower(catalog[i].Name) == name {
			return &catalog[i], nil
		}
	}
	return nil, fmt.Errorf("card %q: %w", key, common.ErrNotFound)
}
