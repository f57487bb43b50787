package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daniel/expert-panel/internal/types"
)

var updateTermsCmd = &cobra.Command{
	Use:   "update-terms",
	Short: "Append matching vocabulary to a role's term set",
	Long:  "Appends primary, secondary, or negative terms to a role's matching vocabulary and writes the updated term database to the output file. The output can be used as a term_database override in the config.",
	RunE:  runUpdateTerms,
}

var (
	updateTermsRoleID    string
	updateTermsPrimary   []string
	updateTermsSecondary []string
	updateTermsNegative  []string
	updateTermsOutput    string
)

func init() {
	updateTermsCmd.Flags().StringVarP(&updateTermsRoleID, "role", "r", "", "Role key to update (required)")
	updateTermsCmd.Flags().StringSliceVar(&updateTermsPrimary, "primary", nil, "Primary term to add (repeatable)")
	updateTermsCmd.Flags().StringSliceVar(&updateTermsSecondary, "secondary", nil, "Secondary term to add (repeatable)")
	updateTermsCmd.Flags().StringSliceVar(&updateTermsNegative, "negative", nil, "Negative term to add (repeatable)")
	updateTermsCmd.Flags().StringVarP(&updateTermsOutput, "output", "o", "", "Output file for the updated term database (required)")

	if err := updateTermsCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}
	if err := updateTermsCmd.MarkFlagRequired("output"); err != nil {
		panic(fmt.Sprintf("failed to mark output flag as required: %v", err))
	}

	rootCmd.AddCommand(updateTermsCmd)
}

func runUpdateTerms(cmd *cobra.Command, _ []string) error {
	update := types.TermUpdate{
		Primary:   updateTermsPrimary,
		Secondary: updateTermsSecondary,
		Negative:  updateTermsNegative,
	}
	if update.IsEmpty() {
		return fmt.Errorf("no terms to add: provide at least one of --primary, --secondary, --negative")
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	catalog, store, _, err := loadComponents(cfg)
	if err != nil {
		return err
	}

	if _, err := catalog.Get(updateTermsRoleID); err != nil {
		return err
	}

	store.Update(updateTermsRoleID, update)

	data, err := store.Export()
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(updateTermsOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(updateTermsOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write term database to %s: %w", updateTermsOutput, err)
	}

	added := len(update.Primary) + len(update.Secondary) + len(update.Negative)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d terms to %s, wrote %s\n", added, updateTermsRoleID, updateTermsOutput)

	return nil
}
