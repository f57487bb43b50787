package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniel/expert-panel/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes the scoring, nomination, and reasoning framework endpoints. Requires PANEL_AUTH_SECRET (or auth_secret in the config file) for the mutating endpoints.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or 8480)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	// The config file can supply the auth secret when the environment
	// does not.
	if cfg.AuthSecret != "" && os.Getenv("PANEL_AUTH_SECRET") == "" {
		if err := os.Setenv("PANEL_AUTH_SECRET", cfg.AuthSecret); err != nil {
			return fmt.Errorf("failed to set auth secret: %w", err)
		}
	}

	catalog, store, engine, err := loadComponents(cfg)
	if err != nil {
		return err
	}

	port := servePort
	if port == 0 {
		port = cfg.EffectivePort()
	}

	srv, err := server.New(server.Config{
		Port:    port,
		Catalog: catalog,
		Terms:   store,
		Engine:  engine,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
