// Package cache provides the file-based TTL result cache for xfetch.
//
// Fetched result sets are stored one JSON file per entry in a configurable
// directory, keyed by a SHA-256 digest of the request identifier. Key
// features:
//   - Deterministic cache keys: "{category}_{16-hex-digest}"
//   - Per-category TTL expiration (1h for searches, 24h for timelines and
//     single tweets)
//   - Corruption tolerance: a damaged entry behaves as a miss, never as an
//     error
//   - Aggregate statistics over the cache directory, including corrupt
//     entries
//
// The cache assumes a single cooperating process. It is an optimization in
// front of paid API calls, never a dependency for correctness: every failure
// path degrades to "treat as miss" or "warn and continue".
package cache
