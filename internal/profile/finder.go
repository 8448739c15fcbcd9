package profile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultIndex is the selection index used when the caller does not pick one.
const DefaultIndex = 1

// DefaultConcurrency bounds FindAll when no limit is given.
const DefaultConcurrency = 4

// Searcher returns result URLs for a free-text query in relevance order.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Finder resolves LinkedIn profile URLs through a Searcher.
type Finder struct {
	searcher Searcher
	log      zerolog.Logger
}

// NewFinder creates a Finder backed by searcher.
func NewFinder(searcher Searcher, log zerolog.Logger) *Finder {
	return &Finder{searcher: searcher, log: log}
}

// Find searches for query and selects the profile at index among results of
// the requested kind. company=false and index=1 give the first personal profile.
func (f *Finder) Find(ctx context.Context, query string, company bool, index int) (*Selection, error) {
	// Checked up front so a bad index does not spend an API call.
	if err := ValidateIndex(index); err != nil {
		return nil, err
	}

	urls, err := f.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search for %q failed: %w", query, err)
	}

	sel, err := Select(urls, TypeFor(company), index, f.log)
	if err != nil {
		return nil, err
	}
	sel.Query = query

	return sel, nil
}

// Lookup is one query of a batch.
type Lookup struct {
	Query   string
	Company bool
	Index   int
}

// Outcome is the result of one Lookup. Exactly one of Selection and Err is set.
type Outcome struct {
	Lookup    Lookup
	Selection *Selection
	Err       error
}

// FindAll runs each lookup independently with at most concurrency in flight
// and returns outcomes in input order. A failed lookup does not stop the rest.
func (f *Finder) FindAll(ctx context.Context, lookups []Lookup, concurrency int) []Outcome {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(lookups))

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, l := range lookups {
		g.Go(func() error {
			sel, err := f.Find(ctx, l.Query, l.Company, l.Index)
			outcomes[i] = Outcome{Lookup: l, Selection: sel, Err: err}
			if err != nil {
				f.log.Warn().Err(err).Str("query", l.Query).Msg("Lookup failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
