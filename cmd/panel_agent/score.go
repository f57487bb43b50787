package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniel/expert-panel/internal/observability"
	"github.com/daniel/expert-panel/internal/scoring"
	"github.com/daniel/expert-panel/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single expert role against a task description",
	Long:  "Computes the bounded [0,100] confidence score for one role against a task description, with the matched terms and reasoning behind it. Unknown roles score low rather than failing.",
	RunE:  runScore,
}

var (
	scoreRoleID       string
	scoreQuery        string
	scoreCategory     string
	scoreCapabilities []string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreRoleID, "role", "r", "", "Role key to score (required)")
	scoreCmd.Flags().StringVarP(&scoreQuery, "query", "q", "", "Task description (required)")
	scoreCmd.Flags().StringVar(&scoreCategory, "category", "", "Category hint for the task")
	scoreCmd.Flags().StringSliceVar(&scoreCapabilities, "capability", nil, "Required capability (repeatable)")

	if err := scoreCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("query"); err != nil {
		panic(fmt.Sprintf("failed to mark query flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	catalog, store, _, err := loadComponents(cfg)
	if err != nil {
		return err
	}

	scorer := scoring.New(catalog, store, scoring.NewWeights())
	result := scorer.Score(scoreRoleID, scoreQuery, types.ScoreContext{
		Category:     scoreCategory,
		Capabilities: scoreCapabilities,
	})

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintScoreDetail(&result)
		return nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize score result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))

	return nil
}
