package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// OptionsValues is a snapshot of resolved feature-flag values: the options
// of the package itself plus option values scoped to individual
// dependencies, rendered as "pkg:opt=value". Dependency-scoped values are
// the transitively inherited ("indirect") part of the snapshot.
type OptionsValues struct {
	local map[string]string
	deps  map[string]map[string]string
}

// NewOptionsValues returns an empty snapshot.
func NewOptionsValues() *OptionsValues {
	return &OptionsValues{
		local: make(map[string]string),
		deps:  make(map[string]map[string]string),
	}
}

// LoadOptionsValues parses a dump of option lines, local ("opt=value") and
// dependency-scoped ("pkg:opt=value") alike.
func LoadOptionsValues(text string) (*OptionsValues, error) {
	v := NewOptionsValues()
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(ErrMalformedValueLine, "failed to parse options values"), "line", line)
		}
		v.Set(key, value)
	}
	return v, nil
}

// Set stores a value. A key of the form "pkg:opt" scopes the value to a
// dependency; any other key is an option of the package itself.
func (v *OptionsValues) Set(key, value string) {
	if pkg, opt, ok := strings.Cut(key, ":"); ok {
		if v.deps[pkg] == nil {
			v.deps[pkg] = make(map[string]string)
		}
		v.deps[pkg][opt] = value
		return
	}
	v.local[key] = value
}

// ClearIndirect drops every dependency-scoped value, keeping only the
// options declared by the package itself. Run on the pruned snapshot during
// identity construction.
func (v *OptionsValues) ClearIndirect() {
	v.deps = make(map[string]map[string]string)
}

// Copy returns an independent deep copy.
func (v *OptionsValues) Copy() *OptionsValues {
	c := NewOptionsValues()
	maps.Copy(c.local, v.local)
	for pkg, opts := range v.deps {
		c.deps[pkg] = maps.Clone(opts)
	}
	return c
}

func (v *OptionsValues) localLines() []string {
	keys := slices.Sorted(maps.Keys(v.local))
	lines := make([]string, len(keys))
	for i, key := range keys {
		lines[i] = key + "=" + v.local[key]
	}
	return lines
}

func (v *OptionsValues) depLines(pkg string) []string {
	opts := v.deps[pkg]
	keys := slices.Sorted(maps.Keys(opts))
	lines := make([]string, len(keys))
	for i, key := range keys {
		lines[i] = pkg + ":" + key + "=" + opts[key]
	}
	return lines
}

// Dumps renders local options first, then dependency-scoped options, each
// group in ascending key order.
func (v *OptionsValues) Dumps() string {
	lines := v.localLines()
	for _, pkg := range slices.Sorted(maps.Keys(v.deps)) {
		lines = append(lines, v.depLines(pkg)...)
	}
	return strings.Join(lines, "\n")
}

// IdentityHash reduces the snapshot to a content hash. Dependency-scoped
// values of packages outside the relevance filter are excluded, mirroring
// the dev-requirement exclusion of the requirement hash.
func (v *OptionsValues) IdentityHash(hasher ContentHasher, relevant RelevanceFilter) string {
	lines := v.localLines()
	for _, pkg := range slices.Sorted(maps.Keys(v.deps)) {
		if !relevant.Relevant(pkg) {
			continue
		}
		lines = append(lines, v.depLines(pkg)...)
	}
	return hasher.Sum([]byte(strings.Join(lines, "\n")))
}

// Serialize returns the snapshot as a flat map keyed by dump keys.
func (v *OptionsValues) Serialize() map[string]string {
	out := maps.Clone(v.local)
	for pkg, opts := range v.deps {
		for opt, value := range opts {
			out[pkg+":"+opt] = value
		}
	}
	return out
}

// DeserializeOptionsValues rebuilds a snapshot from its structured form.
func DeserializeOptionsValues(data map[string]string) *OptionsValues {
	v := NewOptionsValues()
	for key, value := range data {
		v.Set(key, value)
	}
	return v
}
