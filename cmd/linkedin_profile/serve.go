package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-profile/internal/observability"
	"github.com/jonathan/linkedin-profile/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP lookup server",
	Long:  `Start an HTTP server exposing GET /profile?q=<query>&company=<bool>&index=<n> and GET /health.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := observability.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)

	srv, err := server.New(server.Config{
		Port:   servePort,
		Finder: newFinder(cfg, log),
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
