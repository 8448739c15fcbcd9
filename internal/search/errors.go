// Package search talks to the Google Custom Search JSON API: it builds the
// request URL, performs the GET and projects the response into result URLs.
package search

import "fmt"

// TransportError represents a failed HTTP exchange with the search API.
// StatusCode is zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error for %s: %s", e.URL, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ParseError represents a response body that is not valid JSON.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NoResultsError is returned when the search API response has no items.
type NoResultsError struct {
	Query string
}

func (e *NoResultsError) Error() string {
	if e.Query == "" {
		return "no results: search returned no items"
	}
	return fmt.Sprintf("no results: search for %q returned no items", e.Query)
}
