package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultBaseURL is the Google Custom Search API host.
	DefaultBaseURL = "https://www.googleapis.com"
	// DefaultResultCount is the page size requested from the API (its maximum).
	DefaultResultCount = 10

	endpointPath = "/customsearch/v1"
)

// Request is a single search against the Custom Search API.
// It is built per call and never modified afterwards.
type Request struct {
	Query          string
	APIKey         string
	SearchEngineID string
	ResultCount    int
}

// NewRequest returns a Request for query with the default result count.
func NewRequest(query, apiKey, searchEngineID string) Request {
	return Request{
		Query:          query,
		APIKey:         apiKey,
		SearchEngineID: searchEngineID,
		ResultCount:    DefaultResultCount,
	}
}

// BuildURL assembles the GET URL for req against baseURL.
// The query text is passed through as-is, including the empty string.
func BuildURL(baseURL string, req Request) (string, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid search base URL %q", baseURL)
	}

	count := req.ResultCount
	if count <= 0 {
		count = DefaultResultCount
	}

	params := url.Values{}
	params.Set("key", req.APIKey)
	params.Set("cx", req.SearchEngineID)
	params.Set("q", req.Query)
	params.Set("num", strconv.Itoa(count))

	base.Path = strings.TrimSuffix(base.Path, "/") + endpointPath
	base.RawQuery = params.Encode()

	return base.String(), nil
}
