package cache

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// Manager orchestrates key derivation, the entry store, and the TTL policy
// behind the load/save/clear/stats operations used by the fetch workflow.
//
// No error from the manager ever aborts a request: a load failure is a
// miss, a save failure is a warning, and stats degrade per entry.
type Manager struct {
	store  *Store
	ttl    TTLPolicy
	logger zerolog.Logger
	now    func() time.Time
}

// NewManager creates a cache manager over directory with the given TTL
// policy. The logger is the diagnostic channel for non-fatal cache
// failures.
func NewManager(directory string, ttl TTLPolicy, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  NewStore(directory),
		ttl:    ttl,
		logger: logger.With().Str("component", "cache").Logger(),
		now:    time.Now,
	}
}

// Directory returns the cache directory path.
func (m *Manager) Directory() string {
	return m.store.Directory()
}

// Load returns the cached entry for (category, identifier) if one exists
// and is still fresh. A stale or corrupt entry is deleted on detection and
// reported as a miss; after being observed once it is gone.
func (m *Manager) Load(category Category, identifier string) (*Entry, bool) {
	key := Key(category, identifier)

	data, ok := m.store.Read(key)
	if !ok {
		return nil, false
	}

	entry, err := parseEntry(data)
	if err != nil {
		m.discard(key, "discarding corrupt cache entry")
		return nil, false
	}

	if !m.ttl.IsFresh(entry.FetchedAt, category, m.now()) {
		m.discard(key, "discarding stale cache entry")
		return nil, false
	}

	return entry, true
}

// Peek returns the entry stored under key without any freshness check or
// delete side effect. It is the pure read used by reporting surfaces; Load
// remains the path for request serving.
func (m *Manager) Peek(key string) (*Entry, bool) {
	data, ok := m.store.Read(key)
	if !ok {
		return nil, false
	}

	entry, err := parseEntry(data)
	if err != nil {
		return nil, false
	}
	return entry, true
}

// Save stores payload under (category, identifier), stamping fetched_at
// with the current UTC time. Failures are warned on the diagnostic channel
// and otherwise swallowed: caching is best-effort and must never block
// delivery of freshly fetched data.
func (m *Manager) Save(category Category, identifier string, payload json.RawMessage) {
	if !category.Known() {
		m.logger.Warn().
			Str("category", category.String()).
			Msg("saving under unrecognized category; default TTL applies")
	}

	fetchedAt := m.now().UTC().Format(time.RFC3339)

	data, err := encodeEntry(category, identifier, fetchedAt, payload)
	if err != nil {
		m.logger.Warn().
			Str("category", category.String()).
			Err(err).
			Msg("could not serialize cache entry")
		return
	}

	if err := m.store.Write(Key(category, identifier), data); err != nil {
		m.logger.Warn().
			Str("category", category.String()).
			Err(err).
			Msg("could not save cache entry")
	}
}

// ClearAll deletes every stored entry and returns the number successfully
// removed. Individual delete failures are skipped, not raised.
func (m *Manager) ClearAll() int {
	keys, err := m.store.ListKeys()
	if err != nil {
		m.logger.Warn().Err(err).Msg("could not enumerate cache entries")
		return 0
	}

	cleared := 0
	for _, key := range keys {
		if err := m.store.Delete(key); err != nil {
			m.logger.Debug().Str("key", key).Err(err).Msg("skipping undeletable cache entry")
			continue
		}
		cleared++
	}
	return cleared
}

func (m *Manager) discard(key, reason string) {
	if err := m.store.Delete(key); err != nil {
		m.logger.Debug().Str("key", key).Err(err).Msg("could not delete cache entry")
		return
	}
	m.logger.Debug().Str("key", key).Msg(reason)
}
