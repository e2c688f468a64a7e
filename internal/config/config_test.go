package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()

	assert.Equal(t, DefaultActorID, cfg.ActorID)
	assert.Equal(t, DefaultAPIBase, cfg.APIBase)
	assert.Equal(t, DefaultMaxResults, cfg.MaxResults)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, DefaultTTLSearchSeconds, cfg.Cache.TTLSearchSeconds)
	assert.Equal(t, DefaultTTLUserSeconds, cfg.Cache.TTLUserSeconds)
	assert.Equal(t, DefaultTTLTweetSeconds, cfg.Cache.TTLTweetSeconds)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAPIToken, "apify_api_test")
	t.Setenv(EnvActorID, "acme~other-scraper")
	t.Setenv(EnvCacheDir, "/tmp/xfetch-test-cache")
	t.Setenv(EnvCacheEnabled, "false")
	t.Setenv(EnvTTLSearch, "120")

	cfg := defaults()
	cfg.applyEnv()

	assert.Equal(t, "apify_api_test", cfg.APIToken)
	assert.Equal(t, "acme~other-scraper", cfg.ActorID)
	assert.Equal(t, "/tmp/xfetch-test-cache", cfg.Cache.Directory)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 120, cfg.Cache.TTLSearchSeconds)

	t.Run("InvalidTTLIgnored", func(t *testing.T) {
		t.Setenv(EnvTTLSearch, "soon")
		cfg := defaults()
		cfg.applyEnv()
		assert.Equal(t, DefaultTTLSearchSeconds, cfg.Cache.TTLSearchSeconds)
	})

	t.Run("NegativeTTLIgnored", func(t *testing.T) {
		t.Setenv(EnvTTLSearch, "-5")
		cfg := defaults()
		cfg.applyEnv()
		assert.Equal(t, DefaultTTLSearchSeconds, cfg.Cache.TTLSearchSeconds)
	})
}

func TestMergeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlBody := `
actor_id: acme~custom
max_results: 50
cache:
  enabled: true
  ttl_search_seconds: 900
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))

	cfg := defaults()
	require.NoError(t, cfg.mergeFile(path))

	assert.Equal(t, "acme~custom", cfg.ActorID)
	assert.Equal(t, 50, cfg.MaxResults)
	assert.Equal(t, 900, cfg.Cache.TTLSearchSeconds)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultAPIBase, cfg.APIBase)

	t.Run("MissingFileIsNotAnError", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, cfg.mergeFile(filepath.Join(t.TempDir(), "absent.yaml")))
	})

	t.Run("BrokenYAML", func(t *testing.T) {
		broken := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(broken, []byte("cache: ["), 0o600))
		cfg := defaults()
		assert.Error(t, cfg.mergeFile(broken))
	})
}

func TestRequireAPIToken(t *testing.T) {
	cfg := defaults()

	_, err := cfg.RequireAPIToken()
	assert.ErrorIs(t, err, ErrMissingAPIToken)

	cfg.APIToken = "apify_api_test"
	token, err := cfg.RequireAPIToken()
	require.NoError(t, err)
	assert.Equal(t, "apify_api_test", token)
}
