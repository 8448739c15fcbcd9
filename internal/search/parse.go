package search

import (
	"encoding/json"
	"net/url"

	customsearch "google.golang.org/api/customsearch/v1"
)

// ParseItems decodes a Custom Search response body and returns the
// formattedUrl of every item, in the order the API returned them.
func ParseItems(body string) ([]string, error) {
	var res customsearch.Search
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, &ParseError{
			Message: "response is not valid JSON",
			Cause:   err,
		}
	}

	if len(res.Items) == 0 {
		return nil, &NoResultsError{}
	}

	items := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil {
			items = append(items, "")
			continue
		}
		items = append(items, item.FormattedUrl)
	}

	return items, nil
}

// redact strips the query string so credentials never reach logs or errors.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	return u.String()
}
