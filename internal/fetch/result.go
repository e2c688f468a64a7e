// Package fetch orchestrates the fetch workflow: sanitize the request,
// serve it from the local cache when possible, otherwise run the remote
// actor, normalize its output, and cache the result best-effort.
package fetch

// Tweet is one normalized post record.
type Tweet struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	AuthorName string `json:"author_name"`
	CreatedAt  string `json:"created_at"`
	Likes      int    `json:"likes"`
	Retweets   int    `json:"retweets"`
	Replies    int    `json:"replies"`
	URL        string `json:"url"`
}

// ResultSet is the formatted result of one fetch: an ordered sequence of
// tweets plus a count. It is the payload attached to cache entries, so its
// JSON shape is also the on-disk cache payload shape.
type ResultSet struct {
	Query     string  `json:"query"`
	Mode      string  `json:"mode"`
	FetchedAt string  `json:"fetched_at"`
	Count     int     `json:"count"`
	Tweets    []Tweet `json:"tweets"`
}
