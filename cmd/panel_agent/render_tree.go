package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var renderTreeCmd = &cobra.Command{
	Use:   "render-tree <template>",
	Short: "Render a tree-of-thoughts reasoning template",
	Long:  "Populates the named tree-of-thoughts template with the supplied leaf substitutions and prints the filled structure together with its derived analysis summary.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRenderTree,
}

var renderTreeSubs []string

func init() {
	renderTreeCmd.Flags().StringSliceVar(&renderTreeSubs, "sub", nil, "Leaf substitution as placeholder=value (repeatable)")

	rootCmd.AddCommand(renderTreeCmd)
}

func runRenderTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	_, _, engine, err := loadComponents(cfg)
	if err != nil {
		return err
	}

	subs, err := parseKeyValues(renderTreeSubs)
	if err != nil {
		return err
	}

	result, err := engine.RenderTree(args[0], subs)
	if err != nil {
		return err
	}

	structure, err := json.MarshalIndent(result.Structure, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tree structure: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n\n%s\n", result.TemplateName, string(structure), result.Analysis)

	return nil
}
