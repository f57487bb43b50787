package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniel/expert-panel/internal/scoring"
	"github.com/daniel/expert-panel/internal/types"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Preview how feedback adapts the scoring weights",
	Long:  "Applies one round of nomination feedback to the default scoring weights and prints the weights before and after. Weight state is per-process; use the REST or MCP surface to adapt a long-running instance.",
	RunE:  runFeedback,
}

var (
	feedbackAccurate bool
	feedbackFactors  []string
)

func init() {
	feedbackCmd.Flags().BoolVar(&feedbackAccurate, "accurate", false, "Whether the nomination was accurate")
	feedbackCmd.Flags().StringSliceVar(&feedbackFactors, "factor", nil, "Scoring factor the feedback concerns (repeatable, required)")

	if err := feedbackCmd.MarkFlagRequired("factor"); err != nil {
		panic(fmt.Sprintf("failed to mark factor flag as required: %v", err))
	}

	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	weights := scoring.NewWeights()
	before := weights.Snapshot()

	weights.Adapt(types.Feedback{
		Accurate: feedbackAccurate,
		Factors:  feedbackFactors,
	})

	output, err := json.MarshalIndent(map[string]any{
		"before": before,
		"after":  weights.Snapshot(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize weights: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))

	return nil
}
