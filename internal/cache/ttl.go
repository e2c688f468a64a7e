package cache

import "time"

// Default TTLs per category.
const (
	// DefaultSearchTTL is how long keyword search results stay fresh.
	DefaultSearchTTL = time.Hour

	// DefaultUserTTL is how long user-timeline results stay fresh.
	DefaultUserTTL = 24 * time.Hour

	// DefaultTweetTTL is how long single-tweet results stay fresh.
	DefaultTweetTTL = 24 * time.Hour
)

// TTLPolicy maps categories to their time-to-live. TTLs are policy
// constants resolved at construction, not per-entry data.
type TTLPolicy struct {
	search time.Duration
	user   time.Duration
	tweet  time.Duration
}

// NewTTLPolicy builds a policy from explicit durations. Non-positive
// durations fall back to the category default.
func NewTTLPolicy(search, user, tweet time.Duration) TTLPolicy {
	if search <= 0 {
		search = DefaultSearchTTL
	}
	if user <= 0 {
		user = DefaultUserTTL
	}
	if tweet <= 0 {
		tweet = DefaultTweetTTL
	}
	return TTLPolicy{search: search, user: user, tweet: tweet}
}

// DefaultTTLPolicy returns the policy with the stock TTLs.
func DefaultTTLPolicy() TTLPolicy {
	return NewTTLPolicy(DefaultSearchTTL, DefaultUserTTL, DefaultTweetTTL)
}

// TTLFor returns the TTL for a category. Unrecognized categories fold into
// the single-tweet TTL rather than erroring, so an entry written by a newer
// version is expired on the long profile schedule instead of crashing an
// older reader.
func (p TTLPolicy) TTLFor(category Category) time.Duration {
	switch category {
	case CategorySearch:
		return p.search
	case CategoryUser:
		return p.user
	case CategoryTweet:
		return p.tweet
	default:
		return p.tweet
	}
}

// IsFresh reports whether an entry fetched at fetchedAt (RFC3339, UTC) is
// still within its category's TTL at time now. A missing or unparsable
// timestamp is never fresh: the check fails closed.
func (p TTLPolicy) IsFresh(fetchedAt string, category Category, now time.Time) bool {
	if fetchedAt == "" {
		return false
	}

	fetched, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return false
	}

	age := now.UTC().Sub(fetched)
	return age < p.TTLFor(category)
}
