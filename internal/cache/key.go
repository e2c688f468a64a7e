package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// keyDigestLength is the number of hex characters of the SHA-256 digest
// kept in a cache key. 64 bits of digest keeps collisions astronomically
// unlikely while keeping filenames short.
const keyDigestLength = 16

// Key derives the storage key for a (category, identifier) pair. The
// identifier is hashed so that arbitrary user input (queries with spaces,
// slashes, unicode) maps to a filesystem-safe name. The same inputs always
// derive the same key.
//
// An empty identifier still produces a valid key; rejecting empty input is
// the caller's job.
func Key(category Category, identifier string) string {
	digest := sha256.Sum256([]byte(identifier))
	return fmt.Sprintf("%s_%s", category, hex.EncodeToString(digest[:])[:keyDigestLength])
}
