package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniel/expert-panel/internal/nominate"
	"github.com/daniel/expert-panel/internal/observability"
	"github.com/daniel/expert-panel/internal/scoring"
	"github.com/daniel/expert-panel/internal/types"
)

var nominateCmd = &cobra.Command{
	Use:   "nominate",
	Short: "Nominate the best-matching expert roles for a task",
	Long:  "Scores every cataloged role against the task description and prints the top candidates in descending score order, with a recommendation flag when the leader clears the confidence threshold.",
	RunE:  runNominate,
}

var (
	nominateQuery        string
	nominateCategory     string
	nominateCapabilities []string
	nominateLimit        int
)

func init() {
	nominateCmd.Flags().StringVarP(&nominateQuery, "query", "q", "", "Task description (required)")
	nominateCmd.Flags().StringVar(&nominateCategory, "category", "", "Category hint for the task")
	nominateCmd.Flags().StringSliceVar(&nominateCapabilities, "capability", nil, "Required capability (repeatable)")
	nominateCmd.Flags().IntVarP(&nominateLimit, "limit", "n", 3, "Number of candidates to return")

	if err := nominateCmd.MarkFlagRequired("query"); err != nil {
		panic(fmt.Sprintf("failed to mark query flag as required: %v", err))
	}

	rootCmd.AddCommand(nominateCmd)
}

func runNominate(cmd *cobra.Command, _ []string) error {
	if nominateLimit < 1 {
		return fmt.Errorf("limit must be greater than 0, got %d", nominateLimit)
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	catalog, store, _, err := loadComponents(cfg)
	if err != nil {
		return err
	}

	scorer := scoring.New(catalog, store, scoring.NewWeights())
	ranker := nominate.New(scorer)

	ranked := ranker.Rank(catalog.Keys(), nominateQuery, types.ScoreContext{
		Category:     nominateCategory,
		Capabilities: nominateCapabilities,
	})
	if len(ranked) > nominateLimit {
		ranked = ranked[:nominateLimit]
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintNominations(ranked)
		return nil
	}

	recommended := len(ranked) > 0 && nominate.ShouldRecommend(ranked[0].Score)
	output, err := json.MarshalIndent(map[string]any{
		"nominations": ranked,
		"recommended": recommended,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize nominations: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))

	return nil
}
