package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ScopeValues holds free-form scope data attached to an identity, persisted
// in the canonical dump but absent from the structured form.
type ScopeValues struct {
	values map[string]string
}

// NewScopeValues returns an empty scope.
func NewScopeValues() *ScopeValues {
	return &ScopeValues{values: make(map[string]string)}
}

// LoadScopeValues parses a dump of key=value lines.
func LoadScopeValues(text string) (*ScopeValues, error) {
	s := NewScopeValues()
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(ErrMalformedValueLine, "failed to parse scope values"), "line", line)
		}
		s.values[key] = value
	}
	return s, nil
}

// Set stores a value under key.
func (s *ScopeValues) Set(key, value string) {
	s.values[key] = value
}

// Len returns the number of scope entries.
func (s *ScopeValues) Len() int {
	return len(s.values)
}

// Dumps renders the scope as key=value lines in ascending key order.
func (s *ScopeValues) Dumps() string {
	keys := slices.Sorted(maps.Keys(s.values))
	lines := make([]string, len(keys))
	for i, key := range keys {
		lines[i] = key + "=" + s.values[key]
	}
	return strings.Join(lines, "\n")
}
