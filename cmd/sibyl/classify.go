package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sibylline-app/sibyl/internal/cli"
	"github.com/sibylline-app/sibyl/internal/spread"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <question>",
		Short: "Recommend a spread for a question",
		Long: `Classify a free-text question and recommend the spread that fits it.

Uses the configured AI classifier when available and falls back to local
keyword scoring otherwise.

Examples:
  sibyl classify "Should I take the new job offer?"
  sibyl classify "When will I hear back about the apartment?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	gen, err := buildGenerator()
	if err != nil {
		return fmt.Errorf("failed to configure AI collaborator: %w", err)
	}
	defer closeGenerator(gen)

	result, err := buildClassifier(gen).Classify(cmd.Context(), question)
	if err != nil {
		return err
	}

	def, err := spread.ByID(result.SpreadID)
	if err != nil {
		return err
	}

	detail := fmt.Sprintf("%s (%d cards)", def.Name, def.CardCount)
	if result.Reason != "" {
		detail += "\n" + cli.StyleSubtle(result.Reason)
	}
	detail += "\n" + cli.StyleSubtle(fmt.Sprintf("category=%s source=%s score=%d", result.Category, result.Source, result.Score))
	fmt.Println(cli.RenderBox("Recommended spread", detail))
	return nil
}
