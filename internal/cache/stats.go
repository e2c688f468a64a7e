package cache

import (
	"sort"
	"time"
)

// identifierDisplayLimit caps identifiers in stats output. The full
// identifier stays on disk; only the summary is truncated.
const identifierDisplayLimit = 50

// EntrySummary describes one stored entry for reporting.
type EntrySummary struct {
	// Key is the entry's storage key. It is carried for follow-up reads
	// (the interactive browser peeks entries by key) and does not appear
	// in rendered stats.
	Key string `json:"-"`

	// Category is the entry's category, or CategoryCorrupt for entries
	// that could not be parsed.
	Category Category `json:"mode"`

	// Identifier is the display-truncated request identifier. For corrupt
	// entries it falls back to the storage key.
	Identifier string `json:"identifier"`

	// FetchedAt is the stored fetch timestamp, empty when missing or
	// unparsable.
	FetchedAt string `json:"fetched_at"`

	// SizeBytes is the entry's file size.
	SizeBytes int64 `json:"size"`

	// Fresh reports whether the entry is within its category TTL.
	Fresh bool `json:"fresh"`

	// Count is the number of records in the entry's payload.
	Count int `json:"count"`
}

// Stats aggregates the cache directory's contents.
type Stats struct {
	// Count is the total number of entries, corrupt ones included.
	Count int `json:"count"`

	// TotalSizeBytes is the combined file size of all entries.
	TotalSizeBytes int64 `json:"total_size"`

	// Expired is the number of parsed entries that are no longer fresh.
	Expired int `json:"expired"`

	// Entries lists per-entry summaries, sorted by FetchedAt descending.
	// Entries without a usable timestamp sort last.
	Entries []EntrySummary `json:"entries"`
}

// Stats enumerates all stored entries and aggregates counts, sizes, and
// freshness. Unreadable or unparsable entries are classified under
// CategoryCorrupt rather than omitted: a damaged cache still reports.
func (m *Manager) Stats() *Stats {
	stats := &Stats{}

	keys, err := m.store.ListKeys()
	if err != nil {
		m.logger.Warn().Err(err).Msg("could not enumerate cache entries")
		return stats
	}

	now := m.now()
	for _, key := range keys {
		size := m.store.Size(key)
		stats.TotalSizeBytes += size

		summary, parsed := m.summarize(key, size, now)
		if parsed && !summary.Fresh {
			stats.Expired++
		}
		stats.Entries = append(stats.Entries, summary)
	}

	stats.Count = len(stats.Entries)
	sort.SliceStable(stats.Entries, func(i, j int) bool {
		return stats.Entries[i].FetchedAt > stats.Entries[j].FetchedAt
	})
	return stats
}

// summarize builds the summary for one key. The second return value is
// false when the entry could not be parsed.
func (m *Manager) summarize(key string, size int64, now time.Time) (EntrySummary, bool) {
	data, ok := m.store.Read(key)
	if !ok {
		return corruptSummary(key, size), false
	}

	entry, err := parseEntry(data)
	if err != nil {
		return corruptSummary(key, size), false
	}

	category := entry.Category
	if category == "" {
		category = Category("unknown")
	}
	identifier := entry.Identifier
	if identifier == "" {
		identifier = key
	}

	return EntrySummary{
		Key:        key,
		Category:   category,
		Identifier: truncateIdentifier(identifier),
		FetchedAt:  entry.FetchedAt,
		SizeBytes:  size,
		Fresh:      m.ttl.IsFresh(entry.FetchedAt, category, now),
		Count:      entry.Count,
	}, true
}

func corruptSummary(key string, size int64) EntrySummary {
	return EntrySummary{
		Key:        key,
		Category:   CategoryCorrupt,
		Identifier: key,
		SizeBytes:  size,
	}
}

// truncateIdentifier caps an identifier at identifierDisplayLimit runes so
// multi-byte input truncates cleanly.
func truncateIdentifier(identifier string) string {
	runes := []rune(identifier)
	if len(runes) <= identifierDisplayLimit {
		return identifier
	}
	return string(runes[:identifierDisplayLimit])
}
