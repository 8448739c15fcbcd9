package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-profile/internal/observability"
	"github.com/jonathan/linkedin-profile/internal/profile"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find the LinkedIn profile of a person or company",
	Long: `Find searches for the given name and prints the matching LinkedIn URL.

Use --company to look for company pages instead of personal profiles.
--index picks the Nth match (default 1); --index 0 prints every match, numbered.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

var (
	findCompany bool
	findIndex   int
	findJSON    bool
)

func init() {
	findCmd.Flags().BoolVar(&findCompany, "company", false, "Look for a company page instead of a personal profile")
	findCmd.Flags().IntVarP(&findIndex, "index", "i", profile.DefaultIndex, "1-based result position, or 0 for all results")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := cliLogger(cmd, cfg)

	query := strings.Join(args, " ")
	sel, err := newFinder(cfg, log).Find(cmd.Context(), query, findCompany, findIndex)
	if err != nil {
		return fmt.Errorf("failed to find profile: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintSelection(sel)
	}

	return writeSelection(cmd.OutOrStdout(), sel, findJSON)
}

// writeSelection prints sel one line per entry, or as indented JSON.
func writeSelection(w io.Writer, sel *profile.Selection, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(sel, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, line := range sel.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
