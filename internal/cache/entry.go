package cache

import (
	"encoding/json"
	"fmt"
)

// Metadata fields merged into every stored entry. They live at the top
// level of the JSON object, alongside the caller's payload fields, so an
// entry on disk is the payload object augmented with cache metadata.
const (
	fieldMode       = "mode"
	fieldIdentifier = "identifier"
	fieldFetchedAt  = "fetched_at"
)

// Entry is one cached result set plus its metadata. The payload remains
// opaque to the cache: Raw carries the complete on-disk object and callers
// decode it into their own result type.
type Entry struct {
	// Category is the request kind the entry was stored under.
	Category Category

	// Identifier is the original human-meaningful request key, stored
	// verbatim for display. The storage key is derived from it, never the
	// other way around.
	Identifier string

	// FetchedAt is the UTC RFC3339 timestamp stamped at save time.
	FetchedAt string

	// Count is the number of records in the payload, when the payload
	// carries one.
	Count int

	// Raw is the full on-disk JSON object, payload fields included.
	Raw json.RawMessage
}

// encodeEntry merges cache metadata into the caller's payload object and
// returns the serialized entry. The payload must be a JSON object (or
// empty); metadata fields overwrite any same-named payload fields so the
// stamped fetched_at always wins.
func encodeEntry(category Category, identifier, fetchedAt string, payload json.RawMessage) ([]byte, error) {
	fields := make(map[string]json.RawMessage)
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &fields); err != nil {
			return nil, fmt.Errorf("payload is not a JSON object: %w", err)
		}
	}

	fields[fieldMode] = mustJSON(string(category))
	fields[fieldIdentifier] = mustJSON(identifier)
	fields[fieldFetchedAt] = mustJSON(fetchedAt)

	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling cache entry: %w", err)
	}
	return data, nil
}

// parseEntry decodes the metadata fields out of a stored entry. Anything
// that is not a well-formed entry object is an error; callers treat that as
// a corrupt entry, not a failure.
func parseEntry(data []byte) (*Entry, error) {
	var meta struct {
		Mode       string `json:"mode"`
		Identifier string `json:"identifier"`
		FetchedAt  string `json:"fetched_at"`
		Count      int    `json:"count"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("unmarshaling cache entry: %w", err)
	}

	return &Entry{
		Category:   Category(meta.Mode),
		Identifier: meta.Identifier,
		FetchedAt:  meta.FetchedAt,
		Count:      meta.Count,
		Raw:        data,
	}, nil
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		// Strings and ints cannot fail to marshal.
		panic(err)
	}
	return data
}
