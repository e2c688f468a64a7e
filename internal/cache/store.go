package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// entryFileExtension is the file extension used for cache entries.
const entryFileExtension = ".json"

// Store reads and writes raw cache entries as files in a base directory.
// It owns no policy: freshness and parsing decisions belong to Manager.
// All side effects are confined to the configured directory.
type Store struct {
	directory string
}

// NewStore creates a store rooted at directory. The directory is created
// lazily on first write, so constructing a store never touches the disk.
func NewStore(directory string) *Store {
	return &Store{directory: directory}
}

// Directory returns the cache directory path.
func (s *Store) Directory() string {
	return s.directory
}

// Exists reports whether an entry file is present for key.
func (s *Store) Exists(key string) bool {
	info, err := os.Stat(s.filePath(key))
	return err == nil && !info.IsDir()
}

// Read returns the raw bytes for key. The second return value is false for
// a missing or unreadable file; read failures are indistinguishable from
// absence by design, so a damaged cache never surfaces as an error.
func (s *Store) Read(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Write persists data under key, creating the cache directory if needed.
// The entry is written to a temporary file and renamed so a reader never
// observes a half-written entry.
func (s *Store) Write(key string, data []byte) error {
	if err := os.MkdirAll(s.directory, 0o750); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	filePath := s.filePath(key)
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming cache file: %w", err)
	}

	return nil
}

// Delete removes the entry for key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.filePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting cache file: %w", err)
	}
	return nil
}

// ListKeys returns the keys of all stored entries. A missing cache
// directory yields an empty list, not an error.
func (s *Store) ListKeys() ([]string, error) {
	dirEntries, err := os.ReadDir(s.directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache directory: %w", err)
	}

	var keys []string
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || filepath.Ext(name) != entryFileExtension {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, entryFileExtension))
	}
	return keys, nil
}

// Size returns the byte size of the entry for key, or 0 when it cannot be
// determined.
func (s *Store) Size(key string) int64 {
	info, err := os.Stat(s.filePath(key))
	if err != nil {
		return 0
	}
	return info.Size()
}

func (s *Store) filePath(key string) string {
	return filepath.Join(s.directory, key+entryFileExtension)
}
