package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/linkedin-profile/internal/profile"
	"github.com/jonathan/linkedin-profile/internal/search"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "index", Message: "must be an integer"}
	assert.Equal(t, "validation error: index - must be an integer", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "q", Message: "required"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "InvalidIndexError",
			err:      &profile.InvalidIndexError{Index: -1},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped NoResultsError",
			err:      fmt.Errorf("search for %q failed: %w", "x", &search.NoResultsError{Query: "x"}),
			expected: http.StatusNotFound,
		},
		{
			name:     "TransportError",
			err:      &search.TransportError{URL: "u", StatusCode: 500, Message: "HTTP status 500"},
			expected: http.StatusBadGateway,
		},
		{
			name:     "ParseError",
			err:      &search.ParseError{Message: "bad"},
			expected: http.StatusBadGateway,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
