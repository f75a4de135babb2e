package domain

import (
	"slices"
	"strings"
)

// RequirementManifest is the ordered, full-fidelity list of every reference
// in the transitive closure, direct and indirect alike. It exists for
// provenance and round-trip persistence; it is never hashed directly.
type RequirementManifest []ComponentRef

// ParseRequirementManifest parses one reference per line. Blank lines are
// ignored; any bad line fails the whole parse with ErrMalformedReference.
func ParseRequirementManifest(text string) (RequirementManifest, error) {
	var m RequirementManifest
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ref, err := ParseComponentRef(line)
		if err != nil {
			return nil, err
		}
		m = append(m, ref)
	}
	return m, nil
}

// Extend appends references in place.
func (m *RequirementManifest) Extend(refs []ComponentRef) {
	*m = append(*m, refs...)
}

// Serialize returns the full reference texts in ascending order.
func (m RequirementManifest) Serialize() []string {
	sorted := slices.Clone(m)
	slices.SortFunc(sorted, ComponentRef.Compare)
	out := make([]string, len(sorted))
	for i, ref := range sorted {
		out[i] = ref.String()
	}
	return out
}

// Dumps renders the sorted manifest, one full reference text per line.
func (m RequirementManifest) Dumps() string {
	return strings.Join(m.Serialize(), "\n")
}
