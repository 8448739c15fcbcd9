// Package main provides the linkedin_profile CLI: look up LinkedIn profile
// URLs through the Google Custom Search API, one query at a time, in batch,
// or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-profile/internal/config"
	"github.com/jonathan/linkedin-profile/internal/observability"
	"github.com/jonathan/linkedin-profile/internal/profile"
	"github.com/jonathan/linkedin-profile/internal/search"
)

var rootCmd = &cobra.Command{
	Use:           "linkedin_profile",
	Short:         "Find LinkedIn profile URLs for people and companies",
	Long:          "linkedin_profile queries the Google Custom Search API and returns the LinkedIn personal (/in/) or company (/company/) page matching a name.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath     string
	apiKeyFlag     string
	searchEngineID string
	verbose        bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Custom Search API key (overrides "+config.EnvAPIKey+")")
	rootCmd.PersistentFlags().StringVar(&searchEngineID, "cx", "", "Search engine id (overrides "+config.EnvSearchEngineID+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration from the config file, environment and flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}
	if searchEngineID != "" {
		cfg.SearchEngineID = searchEngineID
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w (set --api-key/--cx, a config file, or %s/%s)", err, config.EnvAPIKey, config.EnvSearchEngineID)
	}

	return cfg, nil
}

// newFinder wires the search client and finder for cfg.
func newFinder(cfg *config.Config, log zerolog.Logger) *profile.Finder {
	client := search.NewClient(cfg.SearchOptions(log))
	return profile.NewFinder(client, log)
}

// cliLogger returns the stderr console logger for cmd.
func cliLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	return observability.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
}
