package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles [key]",
	Short: "List cataloged expert roles or show one role",
	Long:  "Without arguments, lists every cataloged role, optionally filtered by category. With a role key argument, prints that role's full definition and term set.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoles,
}

var rolesCategory string

func init() {
	rolesCmd.Flags().StringVar(&rolesCategory, "category", "", "Filter by category")

	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	catalog, store, _, err := loadComponents(cfg)
	if err != nil {
		return err
	}

	// Single role detail.
	if len(args) == 1 {
		role, err := catalog.Get(args[0])
		if err != nil {
			return err
		}
		termSet, _ := store.TermSet(role.Key)

		output, err := json.MarshalIndent(map[string]any{
			"role":  role,
			"terms": termSet,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize role: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	roles := catalog.List(rolesCategory)
	for _, role := range roles {
		fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-12s %s\n", role.Key, role.Category, role.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d roles\n", len(roles))

	return nil
}
