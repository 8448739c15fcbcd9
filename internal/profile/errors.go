// Package profile finds LinkedIn profile URLs for a person or a company by
// filtering web search results on the profile path.
package profile

import "fmt"

// InvalidIndexError is returned for a negative selection index.
type InvalidIndexError struct {
	Index int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid index: %d (must be 0 for all results or a 1-based position)", e.Index)
}
