package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := NewStore(t.TempDir())

	t.Run("ReadMissing", func(t *testing.T) {
		_, ok := store.Read("search_0000000000000000")
		assert.False(t, ok)
	})

	t.Run("WriteReadRoundTrip", func(t *testing.T) {
		require.NoError(t, store.Write("search_abc", []byte(`{"a":1}`)))
		data, ok := store.Read("search_abc")
		require.True(t, ok)
		assert.JSONEq(t, `{"a":1}`, string(data))
		assert.True(t, store.Exists("search_abc"))
		assert.Equal(t, int64(len(`{"a":1}`)), store.Size("search_abc"))
	})

	t.Run("NoTempFileLeftBehind", func(t *testing.T) {
		require.NoError(t, store.Write("search_tmp", []byte(`{}`)))
		_, err := os.Stat(filepath.Join(store.Directory(), "search_tmp.json.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("OverwriteReplacesWholesale", func(t *testing.T) {
		require.NoError(t, store.Write("search_abc", []byte(`{"b":2}`)))
		data, ok := store.Read("search_abc")
		require.True(t, ok)
		assert.JSONEq(t, `{"b":2}`, string(data))
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		require.NoError(t, store.Delete("search_abc"))
		assert.False(t, store.Exists("search_abc"))
		require.NoError(t, store.Delete("search_abc"))
	})

	t.Run("ListKeys", func(t *testing.T) {
		require.NoError(t, store.Write("user_one", []byte(`{}`)))
		require.NoError(t, store.Write("user_two", []byte(`{}`)))
		// Non-entry files are ignored.
		require.NoError(t, os.WriteFile(filepath.Join(store.Directory(), "notes.txt"), []byte("x"), 0o600))

		keys, err := store.ListKeys()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"search_tmp", "user_one", "user_two"}, keys)
	})
}

func TestStoreMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))

	t.Run("ListKeysEmpty", func(t *testing.T) {
		keys, err := store.ListKeys()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("WriteCreatesDirectory", func(t *testing.T) {
		require.NoError(t, store.Write("tweet_abc", []byte(`{}`)))
		assert.True(t, store.Exists("tweet_abc"))
	})
}
