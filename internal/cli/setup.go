package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/xfetch/xfetch/internal/apify"
	"github.com/xfetch/xfetch/internal/cache"
	"github.com/xfetch/xfetch/internal/config"
	"github.com/xfetch/xfetch/internal/fetch"
)

var errNegativeMaxResults = errors.New("max-results must be >= 0")

// newCacheManager builds the cache manager from config. No API token is
// needed for this, so cache-only commands work without one.
func newCacheManager(cfg *config.Config) *cache.Manager {
	ttl := cache.NewTTLPolicy(
		time.Duration(cfg.Cache.TTLSearchSeconds)*time.Second,
		time.Duration(cfg.Cache.TTLUserSeconds)*time.Second,
		time.Duration(cfg.Cache.TTLTweetSeconds)*time.Second,
	)
	return cache.NewManager(cfg.Cache.Directory, ttl, logger)
}

// newService builds the fetch service for a network-bound command. It
// fails early when no API token is configured.
func newService(cmd *cobra.Command, cfg *config.Config) (*fetch.Service, error) {
	token, err := cfg.RequireAPIToken()
	if err != nil {
		return nil, err
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	useCache := cfg.Cache.Enabled && !noCache

	client := apify.NewClient(cfg.APIBase, cfg.ActorID, token, logger)
	return fetch.NewService(client, newCacheManager(cfg), useCache, logger), nil
}

// resolveMaxResults applies the flag over the config default.
func resolveMaxResults(cmd *cobra.Command, cfg *config.Config) int {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults > 0 {
		return maxResults
	}
	return cfg.MaxResults
}
