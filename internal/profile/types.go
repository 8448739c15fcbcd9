package profile

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type is the kind of LinkedIn page being looked for.
type Type int

const (
	// Individual is a personal profile, served under /in/.
	Individual Type = iota
	// Company is a company page, served under /company/.
	Company
)

// NotFound is the value reported when the requested position is past the
// last matching result.
const NotFound = "not found"

// TypeFor maps the company flag of the invocation surface to a Type.
func TypeFor(company bool) Type {
	if company {
		return Company
	}
	return Individual
}

// PathMarker returns the URL path fragment that identifies t.
func (t Type) PathMarker() string {
	if t == Company {
		return "/company/"
	}
	return "/in/"
}

func (t Type) String() string {
	switch t {
	case Individual:
		return "individual"
	case Company:
		return "company"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// MarshalJSON encodes t as its string name.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Selection is the outcome of a lookup.
//
// With Index 0, Matches holds every filtered URL prefixed with its 1-based
// ordinal ("1. <url>"). With a positive Index, Matches holds the single URL at
// that position, or is empty and Found is false when the position is past
// the last match.
type Selection struct {
	Query   string   `json:"query"`
	Type    Type     `json:"type"`
	Index   int      `json:"index"`
	Matches []string `json:"matches"`
	Found   bool     `json:"found"`
}

// All reports whether every match was requested.
func (s *Selection) All() bool {
	return s.Index == 0
}

// Value returns the single selected URL, or NotFound.
// For an all-results selection it returns the numbered entries one per line.
func (s *Selection) Value() string {
	if !s.Found || len(s.Matches) == 0 {
		return NotFound
	}
	if s.All() {
		return strings.Join(s.Matches, "\n")
	}
	return s.Matches[0]
}

// Lines returns the selection as output rows.
func (s *Selection) Lines() []string {
	if !s.Found || len(s.Matches) == 0 {
		return []string{NotFound}
	}
	return s.Matches
}
