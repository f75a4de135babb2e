package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// SettingsValues is a flat snapshot of resolved build configuration values:
// platform, compiler, architecture and the like. Keys use dotted paths
// ("compiler.version"). The snapshot carries no schema; validation and
// diffing happen elsewhere.
type SettingsValues struct {
	values map[string]string
}

// NewSettingsValues returns an empty snapshot.
func NewSettingsValues() *SettingsValues {
	return &SettingsValues{values: make(map[string]string)}
}

// LoadSettingsValues parses a dump of key=value lines. Blank lines are
// ignored; a line without "=" fails with ErrMalformedValueLine.
func LoadSettingsValues(text string) (*SettingsValues, error) {
	v := NewSettingsValues()
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(ErrMalformedValueLine, "failed to parse settings values"), "line", line)
		}
		v.values[key] = value
	}
	return v, nil
}

// Set stores a value under key, replacing any previous value.
func (v *SettingsValues) Set(key, value string) {
	v.values[key] = value
}

// Get returns the value stored under key.
func (v *SettingsValues) Get(key string) (string, bool) {
	value, ok := v.values[key]
	return value, ok
}

// Remove drops a key from the snapshot. This is the pruning hook: an
// orchestrator removes the settings that must not influence the identity of
// a particular package before the hash is computed.
func (v *SettingsValues) Remove(key string) {
	delete(v.values, key)
}

// Copy returns an independent deep copy.
func (v *SettingsValues) Copy() *SettingsValues {
	return &SettingsValues{values: maps.Clone(v.values)}
}

// Dumps renders the snapshot as key=value lines in ascending key order.
func (v *SettingsValues) Dumps() string {
	keys := slices.Sorted(maps.Keys(v.values))
	lines := make([]string, len(keys))
	for i, key := range keys {
		lines[i] = key + "=" + v.values[key]
	}
	return strings.Join(lines, "\n")
}

// IdentityHash returns the content hash of the canonical dump.
func (v *SettingsValues) IdentityHash(hasher ContentHasher) string {
	return hasher.Sum([]byte(v.Dumps()))
}

// Serialize returns the snapshot as a plain map for structured export.
func (v *SettingsValues) Serialize() map[string]string {
	return maps.Clone(v.values)
}

// DeserializeSettingsValues rebuilds a snapshot from its structured form.
func DeserializeSettingsValues(data map[string]string) *SettingsValues {
	v := NewSettingsValues()
	maps.Copy(v.values, data)
	return v
}
