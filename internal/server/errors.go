// Package server provides the HTTP API for profile lookups.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/linkedin-profile/internal/profile"
	"github.com/jonathan/linkedin-profile/internal/search"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Lookup errors arrive wrapped, so the chain is inspected.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		indexErr      *profile.InvalidIndexError
		noResultsErr  *search.NoResultsError
		transportErr  *search.TransportError
		parseErr      *search.ParseError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &indexErr):
		return http.StatusBadRequest
	case errors.As(err, &noResultsErr):
		return http.StatusNotFound
	case errors.As(err, &transportErr), errors.As(err, &parseErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
