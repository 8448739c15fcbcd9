package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-profile/internal/profile"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Look up one query per line from a file or stdin",
	Long: `Batch resolves every non-empty line of the input as an independent lookup
and prints "query<TAB>result" rows in input order. A failed row prints
"ERROR: <message>" and does not stop the others.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

var (
	batchCompany     bool
	batchIndex       int
	batchConcurrency int
)

func init() {
	batchCmd.Flags().BoolVar(&batchCompany, "company", false, "Look for company pages instead of personal profiles")
	batchCmd.Flags().IntVarP(&batchIndex, "index", "i", profile.DefaultIndex, "1-based result position, or 0 for all results")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Parallel lookups (default from config, else 4)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := cliLogger(cmd, cfg)

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input file %s: %w", args[0], err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	lookups, err := readLookups(in, batchCompany, batchIndex)
	if err != nil {
		return err
	}

	concurrency := batchConcurrency
	if concurrency == 0 {
		concurrency = cfg.Concurrency
	}

	outcomes := newFinder(cfg, log).FindAll(cmd.Context(), lookups, concurrency)
	failed, err := writeOutcomes(cmd.OutOrStdout(), outcomes)
	if err != nil {
		return err
	}

	log.Info().Int("lookups", len(outcomes)).Int("failed", failed).Msg("Batch finished")
	return nil
}

// readLookups turns each non-blank input line into a Lookup.
func readLookups(r io.Reader, company bool, index int) ([]profile.Lookup, error) {
	var lookups []profile.Lookup

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		lookups = append(lookups, profile.Lookup{Query: query, Company: company, Index: index})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries: %w", err)
	}

	return lookups, nil
}

// writeOutcomes prints one row per outcome and returns the number of failures.
// An all-results selection is written on a single row, entries separated by "; ".
func writeOutcomes(w io.Writer, outcomes []profile.Outcome) (int, error) {
	failed := 0
	for _, o := range outcomes {
		var result string
		if o.Err != nil {
			failed++
			result = "ERROR: " + o.Err.Error()
		} else {
			result = strings.Join(o.Selection.Lines(), "; ")
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", o.Lookup.Query, result); err != nil {
			return failed, err
		}
	}
	return failed, nil
}
