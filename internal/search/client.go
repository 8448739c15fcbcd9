package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string sent to the search API.
const DefaultUserAgent = "Mozilla/5.0 (compatible; LinkedInProfile/1.0)"

// Options configures a Client.
type Options struct {
	BaseURL        string
	APIKey         string
	SearchEngineID string
	Timeout        time.Duration
	UserAgent      string
	HTTPClient     *http.Client
	Logger         zerolog.Logger
}

// DefaultOptions returns sensible defaults. Credentials must still be set.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Logger:    zerolog.Nop(),
	}
}

// Client issues Custom Search queries with fixed credentials.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL        string
	apiKey         string
	searchEngineID string
	userAgent      string
	httpClient     *http.Client
	log            zerolog.Logger
}

// NewClient creates a Client from opts. A nil opts uses DefaultOptions.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:        baseURL,
		apiKey:         opts.APIKey,
		searchEngineID: opts.SearchEngineID,
		userAgent:      userAgent,
		httpClient:     httpClient,
		log:            opts.Logger,
	}
}

// NewRequest builds a Request for query using the client's credentials.
func (c *Client) NewRequest(query string) Request {
	return NewRequest(query, c.apiKey, c.searchEngineID)
}

// Search runs query and returns the formatted URLs in API relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	req := c.NewRequest(query)

	reqURL, err := BuildURL(c.baseURL, req)
	if err != nil {
		return nil, err
	}

	body, err := c.Get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	items, err := ParseItems(body)
	if err != nil {
		var noResults *NoResultsError
		if errors.As(err, &noResults) {
			noResults.Query = query
		}
		return nil, err
	}

	c.log.Debug().Str("query", query).Int("items", len(items)).Msg("Search completed")
	return items, nil
}

// Get performs a single GET against reqURL and returns the body as text.
// Any non-2xx status is a TransportError; nothing is retried.
func (c *Client) Get(ctx context.Context, reqURL string) (string, error) {
	// The URL carries the API key, so only the path is logged.
	displayURL := redact(reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", &TransportError{
			URL:     displayURL,
			Message: "failed to create request",
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = displayURL
		}
		return "", &TransportError{
			URL:     displayURL,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{
			URL:        displayURL,
			StatusCode: resp.StatusCode,
			Message:    "failed to read response body",
			Cause:      err,
		}
	}

	c.log.Debug().
		Str("url", displayURL).
		Int("status", resp.StatusCode).
		Int("bytes", len(bodyBytes)).
		Dur("elapsed", time.Since(start)).
		Msg("Search API responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{
			URL:        displayURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return string(bodyBytes), nil
}
