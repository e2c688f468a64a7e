package cache

// Category is the request kind a cache entry belongs to. Each category has
// its own TTL.
type Category string

const (
	// CategorySearch is a keyword search result set.
	CategorySearch Category = "search"

	// CategoryUser is a user-timeline result set.
	CategoryUser Category = "user"

	// CategoryTweet is a single tweet with replies.
	CategoryTweet Category = "tweet"

	// CategoryCorrupt classifies entries that could not be parsed. It is a
	// reporting-only category: nothing is ever stored under it.
	CategoryCorrupt Category = "corrupt"
)

// Known reports whether c is one of the storable categories.
func (c Category) Known() bool {
	switch c {
	case CategorySearch, CategoryUser, CategoryTweet:
		return true
	case CategoryCorrupt:
		return false
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}
