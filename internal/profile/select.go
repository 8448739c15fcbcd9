package profile

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Filter keeps the URLs whose text contains the path marker of t,
// preserving their order.
func Filter(urls []string, t Type) []string {
	marker := t.PathMarker()
	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.Contains(u, marker) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// ValidateIndex rejects negative selection indexes.
func ValidateIndex(index int) error {
	if index < 0 {
		return &InvalidIndexError{Index: index}
	}
	return nil
}

// Select filters urls by t and picks the result named by index:
// 0 returns every match numbered from 1, N returns the Nth match.
// A positive index past the last match yields a Selection with Found false.
func Select(urls []string, t Type, index int, log zerolog.Logger) (*Selection, error) {
	if err := ValidateIndex(index); err != nil {
		return nil, err
	}

	matches := Filter(urls, t)
	sel := &Selection{Type: t, Index: index}

	switch {
	case index == 0:
		sel.Matches = make([]string, len(matches))
		for i, m := range matches {
			sel.Matches[i] = fmt.Sprintf("%d. %s", i+1, m)
		}
		sel.Found = len(matches) > 0
	case index <= len(matches):
		sel.Matches = []string{matches[index-1]}
		sel.Found = true
	default:
		sel.Matches = []string{}
	}

	log.Debug().
		Str("type", t.String()).
		Int("index", index).
		Int("candidates", len(urls)).
		Int("matches", len(matches)).
		Str("result", sel.Value()).
		Msg("Selected profile result")

	return sel, nil
}
