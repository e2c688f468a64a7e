// Package config loads xfetch configuration from defaults, an optional
// YAML file, and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/xfetch/xfetch/internal/logging"
)

// API defaults.
const (
	// DefaultAPIBase is the Apify REST API root.
	DefaultAPIBase = "https://api.apify.com/v2"

	// DefaultActorID is the scraping actor used when none is configured.
	DefaultActorID = "quacker~twitter-scraper"

	// DefaultMaxResults is the per-request result cap.
	DefaultMaxResults = 20

	// MaxQueryLength caps the length of user-supplied search queries.
	MaxQueryLength = 500
)

// Environment variable names.
const (
	// EnvAPIToken holds the Apify API token.
	EnvAPIToken = "APIFY_API_TOKEN"

	// EnvActorID overrides the scraping actor.
	EnvActorID = "APIFY_ACTOR_ID"

	// EnvCacheDir overrides the cache directory.
	EnvCacheDir = "XFETCH_CACHE_DIR"

	// EnvCacheEnabled enables or disables caching ("true"/"false").
	EnvCacheEnabled = "XFETCH_CACHE_ENABLED"

	// EnvTTLSearch overrides the search-result TTL, in seconds.
	EnvTTLSearch = "XFETCH_CACHE_TTL_SEARCH"

	// EnvTTLUser overrides the user-timeline TTL, in seconds.
	EnvTTLUser = "XFETCH_CACHE_TTL_USER"

	// EnvTTLTweet overrides the single-tweet TTL, in seconds.
	EnvTTLTweet = "XFETCH_CACHE_TTL_TWEET"
)

// Cache TTL defaults, in seconds.
const (
	// DefaultTTLSearchSeconds is the TTL for keyword searches (1 hour).
	DefaultTTLSearchSeconds = 3600

	// DefaultTTLUserSeconds is the TTL for user timelines (24 hours).
	DefaultTTLUserSeconds = 86400

	// DefaultTTLTweetSeconds is the TTL for single tweets (24 hours).
	DefaultTTLTweetSeconds = 86400
)

// ErrMissingAPIToken is returned when a command needs the Apify API and no
// token is configured.
var ErrMissingAPIToken = errors.New(
	"APIFY_API_TOKEN not set (create a token at https://console.apify.com/account/integrations)")

// CacheConfig holds cache tuning.
type CacheConfig struct {
	// Enabled toggles caching globally.
	Enabled bool `yaml:"enabled"`

	// Directory is the cache directory. Empty means <config dir>/cache.
	Directory string `yaml:"directory,omitempty"`

	// TTLSearchSeconds is the TTL for search results.
	TTLSearchSeconds int `yaml:"ttl_search_seconds"`

	// TTLUserSeconds is the TTL for user timelines.
	TTLUserSeconds int `yaml:"ttl_user_seconds"`

	// TTLTweetSeconds is the TTL for single tweets.
	TTLTweetSeconds int `yaml:"ttl_tweet_seconds"`
}

// Config is the resolved configuration for one CLI invocation. It is built
// once and passed by reference; nothing in it is ambient global state.
type Config struct {
	// APIToken authenticates against the Apify API.
	APIToken string `yaml:"api_token,omitempty"`

	// ActorID is the Apify actor to run.
	ActorID string `yaml:"actor_id,omitempty"`

	// APIBase is the Apify API root URL.
	APIBase string `yaml:"api_base,omitempty"`

	// MaxResults is the default result cap per request.
	MaxResults int `yaml:"max_results,omitempty"`

	// Cache is the cache section.
	Cache CacheConfig `yaml:"cache,omitempty"`

	// Logging is the logging section.
	Logging logging.Config `yaml:"logging,omitempty"`
}

// DefaultConfigDir returns ~/.xfetch, or a relative fallback when the home
// directory cannot be resolved.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xfetch"
	}
	return filepath.Join(home, ".xfetch")
}

// New returns a Config populated with defaults, overlaid with
// <config dir>/config.yaml when present, then with environment variables.
func New() *Config {
	cfg := defaults()

	path := filepath.Join(DefaultConfigDir(), "config.yaml")
	// A broken config file falls back to defaults rather than aborting.
	_ = cfg.mergeFile(path)

	cfg.applyEnv()
	return cfg
}

func defaults() *Config {
	return &Config{
		ActorID:    DefaultActorID,
		APIBase:    DefaultAPIBase,
		MaxResults: DefaultMaxResults,
		Cache: CacheConfig{
			Enabled:          true,
			Directory:        filepath.Join(DefaultConfigDir(), "cache"),
			TTLSearchSeconds: DefaultTTLSearchSeconds,
			TTLUserSeconds:   DefaultTTLUserSeconds,
			TTLTweetSeconds:  DefaultTTLTweetSeconds,
		},
	}
}

// mergeFile overlays the YAML file at path onto cfg. A missing file is not
// an error.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays environment variables onto cfg. Invalid numeric values
// are ignored in favor of the current setting.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.APIToken = v
	}
	if v := os.Getenv(EnvActorID); v != "" {
		c.ActorID = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.Cache.Directory = v
	}
	if v := os.Getenv(EnvCacheEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Cache.Enabled = enabled
		}
	}
	overlaySeconds(EnvTTLSearch, &c.Cache.TTLSearchSeconds)
	overlaySeconds(EnvTTLUser, &c.Cache.TTLUserSeconds)
	overlaySeconds(EnvTTLTweet, &c.Cache.TTLTweetSeconds)
}

func overlaySeconds(env string, target *int) {
	v := os.Getenv(env)
	if v == "" {
		return
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return
	}
	*target = seconds
}

// RequireAPIToken returns the configured token or ErrMissingAPIToken.
// Cache-only commands never call this; the token is only needed for
// commands that hit the network.
func (c *Config) RequireAPIToken() (string, error) {
	if c.APIToken == "" {
		return "", ErrMissingAPIToken
	}
	return c.APIToken, nil
}
