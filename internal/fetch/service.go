package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xfetch/xfetch/internal/apify"
	"github.com/xfetch/xfetch/internal/cache"
	"github.com/xfetch/xfetch/internal/config"
)

// Input validation errors.
var (
	ErrEmptyQuery      = errors.New("empty search query")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidTweetURL = errors.New("could not extract tweet ID from URL")
)

// singleTweetMaxItems caps single-tweet fetches high enough to include
// replies when the actor returns them.
const singleTweetMaxItems = 50

// Fetcher runs the remote actor. *apify.Client implements it; tests
// substitute a stub.
type Fetcher interface {
	Run(ctx context.Context, input apify.RunInput) ([]apify.Item, error)
}

// Result is a fetched result set plus its provenance.
type Result struct {
	Set *ResultSet

	// FromCache reports whether the result was served locally. A cached
	// result consumed no Apify credits.
	FromCache bool
}

// Service ties the cache manager and the remote client together. The cache
// is consulted before every remote call and updated best-effort afterwards.
type Service struct {
	client   Fetcher
	cache    *cache.Manager
	useCache bool
	logger   zerolog.Logger
}

// NewService creates the fetch workflow service. When useCache is false
// the cache is bypassed entirely: no loads, no saves.
func NewService(client Fetcher, cacheManager *cache.Manager, useCache bool, logger zerolog.Logger) *Service {
	return &Service{
		client:   client,
		cache:    cacheManager,
		useCache: useCache,
		logger:   logger.With().Str("component", "fetch").Logger(),
	}
}

// Search fetches tweets matching a keyword query.
func (s *Service) Search(ctx context.Context, query string, maxResults int) (*Result, error) {
	query = config.SanitizeQuery(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	return s.fetch(ctx, cache.CategorySearch, query, apify.RunInput{
		SearchTerms: []string{query},
		MaxItems:    maxResults,
	})
}

// User fetches recent tweets from one user's timeline.
func (s *Service) User(ctx context.Context, username string, maxResults int) (*Result, error) {
	username = config.SanitizeUsername(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	return s.fetch(ctx, cache.CategoryUser, username, apify.RunInput{
		StartURLs: []apify.StartURL{{URL: "https://x.com/" + username}},
		MaxItems:  maxResults,
	})
}

// Tweet fetches a single tweet (and replies when available) by URL or bare
// ID. The cache identifier is the extracted tweet ID, so different URL
// spellings of the same tweet share one entry.
func (s *Service) Tweet(ctx context.Context, url string) (*Result, error) {
	tweetID := config.ExtractTweetID(url)
	if tweetID == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTweetURL, url)
	}

	startURL := url
	if !strings.HasPrefix(startURL, "http") {
		// Bare ID: synthesize a canonical URL for the actor.
		startURL = "https://x.com/i/status/" + tweetID
	}

	return s.fetch(ctx, cache.CategoryTweet, tweetID, apify.RunInput{
		StartURLs: []apify.StartURL{{URL: startURL}},
		MaxItems:  singleTweetMaxItems,
	})
}

// fetch is the shared cache-then-remote path.
func (s *Service) fetch(ctx context.Context, category cache.Category, identifier string, input apify.RunInput) (*Result, error) {
	if result, ok := s.fromCache(category, identifier); ok {
		return result, nil
	}

	s.logger.Info().
		Str("category", category.String()).
		Str("identifier", identifier).
		Msg("fetching from Apify")

	items, err := s.client.Run(ctx, input)
	if err != nil {
		return nil, err
	}

	set := FormatResults(category, identifier, items)
	s.saveToCache(category, identifier, set)
	return &Result{Set: set}, nil
}

func (s *Service) fromCache(category cache.Category, identifier string) (*Result, bool) {
	if !s.useCache {
		return nil, false
	}

	entry, ok := s.cache.Load(category, identifier)
	if !ok {
		return nil, false
	}

	var set ResultSet
	if err := json.Unmarshal(entry.Raw, &set); err != nil {
		// Metadata parsed but the payload shape didn't: treat as a miss.
		s.logger.Debug().Err(err).Msg("cached payload did not decode, refetching")
		return nil, false
	}

	s.logger.Info().
		Str("category", category.String()).
		Str("identifier", identifier).
		Msg("served from cache")
	return &Result{Set: &set, FromCache: true}, true
}

func (s *Service) saveToCache(category cache.Category, identifier string, set *ResultSet) {
	if !s.useCache {
		return
	}

	payload, err := json.Marshal(set)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not serialize result set for caching")
		return
	}
	s.cache.Save(category, identifier, payload)
}
