package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(t.TempDir(), DefaultTTLPolicy(), zerolog.Nop())
}

// writeEntryAt fabricates an entry on disk with an arbitrary fetched_at,
// bypassing Save's timestamp stamping.
func writeEntryAt(t *testing.T, m *Manager, category Category, identifier string, fetchedAt time.Time, payload json.RawMessage) {
	t.Helper()
	data, err := encodeEntry(category, identifier, fetchedAt.UTC().Format(time.RFC3339), payload)
	require.NoError(t, err)
	require.NoError(t, m.store.Write(Key(category, identifier), data))
}

func TestManagerRoundTrip(t *testing.T) {
	m := newTestManager(t)
	payload := json.RawMessage(`{"query":"golang","count":2,"tweets":[{"id":"1"},{"id":"2"}]}`)

	m.Save(CategorySearch, "golang", payload)

	entry, ok := m.Load(CategorySearch, "golang")
	require.True(t, ok)
	assert.Equal(t, CategorySearch, entry.Category)
	assert.Equal(t, "golang", entry.Identifier)
	assert.Equal(t, 2, entry.Count)

	fetched, err := time.Parse(time.RFC3339, entry.FetchedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), fetched, 5*time.Second)

	var stored struct {
		Query  string `json:"query"`
		Tweets []struct {
			ID string `json:"id"`
		} `json:"tweets"`
	}
	require.NoError(t, json.Unmarshal(entry.Raw, &stored))
	assert.Equal(t, "golang", stored.Query)
	assert.Len(t, stored.Tweets, 2)
}

func TestManagerMiss(t *testing.T) {
	m := newTestManager(t)

	_, ok := m.Load(CategorySearch, "never saved")
	assert.False(t, ok)
}

func TestManagerExpiry(t *testing.T) {
	m := newTestManager(t)
	ttl := m.ttl.TTLFor(CategorySearch)

	writeEntryAt(t, m, CategorySearch, "old news", time.Now().Add(-ttl-time.Second), json.RawMessage(`{"count":1}`))

	_, ok := m.Load(CategorySearch, "old news")
	assert.False(t, ok)

	// The stale file is gone after being observed once.
	assert.False(t, m.store.Exists(Key(CategorySearch, "old news")))
}

func TestManagerFreshnessBoundary(t *testing.T) {
	m := newTestManager(t)
	ttl := m.ttl.TTLFor(CategorySearch)

	writeEntryAt(t, m, CategorySearch, "just in time", time.Now().Add(-ttl+time.Second), json.RawMessage(`{"count":1}`))

	entry, ok := m.Load(CategorySearch, "just in time")
	require.True(t, ok)
	assert.Equal(t, "just in time", entry.Identifier)
}

func TestManagerCorruptEntry(t *testing.T) {
	m := newTestManager(t)
	key := Key(CategoryUser, "someone")
	require.NoError(t, m.store.Write(key, []byte("not json {")))

	_, ok := m.Load(CategoryUser, "someone")
	assert.False(t, ok)
	assert.False(t, m.store.Exists(key), "corrupt entry should be self-healed away")
}

func TestManagerClearAll(t *testing.T) {
	m := newTestManager(t)
	for _, id := range []string{"one", "two", "three"} {
		m.Save(CategorySearch, id, json.RawMessage(`{"count":0}`))
	}

	assert.Equal(t, 3, m.ClearAll())
	assert.Equal(t, 0, m.Stats().Count)

	t.Run("ClearEmptyCache", func(t *testing.T) {
		assert.Equal(t, 0, m.ClearAll())
	})
}

func TestManagerStats(t *testing.T) {
	m := newTestManager(t)
	now := time.Now()

	writeEntryAt(t, m, CategorySearch, "newest", now.Add(-time.Minute), json.RawMessage(`{"count":3}`))
	writeEntryAt(t, m, CategoryUser, "older", now.Add(-2*time.Hour), json.RawMessage(`{"count":5}`))
	writeEntryAt(t, m, CategorySearch, "expired one", now.Add(-3*time.Hour), json.RawMessage(`{"count":1}`))
	require.NoError(t, m.store.Write("tweet_deadbeefdeadbeef", []byte("garbage")))

	stats := m.Stats()

	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 1, stats.Expired)
	assert.Positive(t, stats.TotalSizeBytes)

	t.Run("SortedByFetchedAtDescending", func(t *testing.T) {
		require.Len(t, stats.Entries, 4)
		assert.Equal(t, "newest", stats.Entries[0].Identifier)
		assert.Equal(t, "older", stats.Entries[1].Identifier)
		assert.Equal(t, "expired one", stats.Entries[2].Identifier)
		// Missing timestamp sorts last via the empty-string sentinel.
		assert.Equal(t, CategoryCorrupt, stats.Entries[3].Category)
	})

	t.Run("CorruptClassification", func(t *testing.T) {
		corrupt := stats.Entries[3]
		assert.Equal(t, "tweet_deadbeefdeadbeef", corrupt.Identifier)
		assert.False(t, corrupt.Fresh)
		assert.Equal(t, int64(len("garbage")), corrupt.SizeBytes)
	})

	t.Run("FreshnessFlags", func(t *testing.T) {
		assert.True(t, stats.Entries[0].Fresh)
		assert.True(t, stats.Entries[1].Fresh)
		assert.False(t, stats.Entries[2].Fresh)
	})

	t.Run("Counts", func(t *testing.T) {
		assert.Equal(t, 3, stats.Entries[0].Count)
		assert.Equal(t, 5, stats.Entries[1].Count)
	})
}

func TestManagerStatsTruncatesIdentifier(t *testing.T) {
	m := newTestManager(t)
	long := ""
	for range 10 {
		long += "0123456789"
	}
	m.Save(CategorySearch, long, json.RawMessage(`{"count":0}`))

	stats := m.Stats()
	require.Len(t, stats.Entries, 1)
	assert.Len(t, stats.Entries[0].Identifier, identifierDisplayLimit)

	// The stored identifier stays verbatim; only the summary is truncated.
	entry, ok := m.Load(CategorySearch, long)
	require.True(t, ok)
	assert.Equal(t, long, entry.Identifier)
}

func TestManagerStatsEmptyDirectory(t *testing.T) {
	m := newTestManager(t)

	stats := m.Stats()
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, int64(0), stats.TotalSizeBytes)
	assert.Empty(t, stats.Entries)
}
