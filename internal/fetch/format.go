package fetch

import (
	"fmt"
	"time"

	"github.com/xfetch/xfetch/internal/apify"
	"github.com/xfetch/xfetch/internal/cache"
)

// FormatResults normalizes raw actor items into a ResultSet. The accessors
// cover both field-name dialects Apify actors emit (text/full_text,
// favorite_count/likeCount, created_at/createdAt).
func FormatResults(category cache.Category, identifier string, items []apify.Item) *ResultSet {
	tweets := make([]Tweet, 0, len(items))

	for _, item := range items {
		user := item.Child("user")
		tweet := Tweet{
			ID:         item.String("id_str", "id"),
			Text:       item.String("text", "full_text"),
			Author:     user.String("screen_name"),
			AuthorName: user.String("name"),
			CreatedAt:  item.String("created_at", "createdAt"),
			Likes:      item.Int("favorite_count", "likeCount"),
			Retweets:   item.Int("retweet_count", "retweetCount"),
			Replies:    item.Int("conversation_count", "replyCount"),
			URL:        item.String("url"),
		}

		if tweet.URL == "" && tweet.Author != "" && tweet.ID != "" {
			tweet.URL = fmt.Sprintf("https://x.com/%s/status/%s", tweet.Author, tweet.ID)
		}

		tweets = append(tweets, tweet)
	}

	return &ResultSet{
		Query:     identifier,
		Mode:      category.String(),
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Count:     len(tweets),
		Tweets:    tweets,
	}
}
