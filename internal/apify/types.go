package apify

import "strconv"

// RunInput is the actor input for one scraping run. Exactly one of
// SearchTerms or StartURLs is set, depending on the request kind.
type RunInput struct {
	SearchTerms []string   `json:"searchTerms,omitempty"`
	StartURLs   []StartURL `json:"startUrls,omitempty"`
	MaxItems    int        `json:"maxItems"`
}

// StartURL wraps a URL the actor should start from.
type StartURL struct {
	URL string `json:"url"`
}

// runEnvelope is the {"data": ...} wrapper the Apify API puts around run
// objects.
type runEnvelope struct {
	Data RunData `json:"data"`
}

// RunData is the subset of an actor-run object the client needs.
type RunData struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

// Item is one raw result record from the actor's dataset. Different actor
// versions emit different field names for the same data, so access goes
// through the loose accessors below instead of a fixed struct.
type Item map[string]any

// String returns the first non-empty string value among keys. Numeric
// values are formatted, which covers actors that emit tweet IDs as numbers.
func (i Item) String(keys ...string) string {
	for _, key := range keys {
		switch v := i[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return ""
}

// Int returns the first numeric value among keys, or 0.
func (i Item) Int(keys ...string) int {
	for _, key := range keys {
		switch v := i[key].(type) {
		case float64:
			return int(v)
		case int:
			return v
		}
	}
	return 0
}

// Child returns the nested object under key, or an empty Item.
func (i Item) Child(key string) Item {
	if v, ok := i[key].(map[string]any); ok {
		return Item(v)
	}
	return Item{}
}
