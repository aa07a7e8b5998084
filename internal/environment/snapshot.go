package environment

import (
	"maps"
	"os"
	"strings"
)

// Snapshot is a read-only view of environment variables taken at a single
// point in time. The zero value is an empty snapshot.
type Snapshot struct {
	// vars holds the captured key/value pairs; it is never mutated after construction.
	vars map[string]string
}

// Capture takes a snapshot of the current process environment.
func Capture() Snapshot {
	return FromPairs(os.Environ())
}

// FromPairs builds a snapshot from "KEY=VALUE" entries as returned by os.Environ.
// Entries without a separator are skipped; later duplicates win.
func FromPairs(pairs []string) Snapshot {
	vars := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}

		vars[key] = value
	}

	return Snapshot{vars: vars}
}

// FromMap builds a snapshot from a copy of the provided map.
func FromMap(vars map[string]string) Snapshot {
	return Snapshot{vars: maps.Clone(vars)}
}

// Lookup returns the value of key and whether it was present in the snapshot.
func (s Snapshot) Lookup(key string) (string, bool) {
	value, ok := s.vars[key]

	return value, ok
}

// Get returns the value of key or an empty string when it is not present.
func (s Snapshot) Get(key string) string {
	return s.vars[key]
}

// GetOr returns the value of key, or fallback when the key is unset or empty.
func (s Snapshot) GetOr(key, fallback string) string {
	if value := s.vars[key]; value != "" {
		return value
	}

	return fallback
}

// Optional returns a pointer to the value of key, or nil when the key is
// unset or empty.
func (s Snapshot) Optional(key string) *string {
	value := s.vars[key]
	if value == "" {
		return nil
	}

	return &value
}
