package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniel/expert-panel/internal/logging"
	"github.com/daniel/expert-panel/internal/mcpserver"
)

var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Start the MCP server on stdio",
	Long:  "Start a Model Context Protocol server that exposes the nomination engine and reasoning frameworks as tools over stdin/stdout. Logs go to stderr; stdout belongs to the protocol.",
	RunE:  runServeMCP,
}

func init() {
	rootCmd.AddCommand(serveMCPCmd)
}

func runServeMCP(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	catalog, store, engine, err := loadComponents(cfg)
	if err != nil {
		return err
	}

	srv, err := mcpserver.NewServer(catalog, store, engine, logging.GetDefault())
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return srv.Start()
}
