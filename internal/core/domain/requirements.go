package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// RelevanceFilter is the set of requirement names that influence the
// identity hash. A nil filter means every requirement is identity-relevant;
// with a non-nil filter, requirements outside it are treated as dev
// dependencies: excluded from the hash but still listed in dumps, tagged.
type RelevanceFilter map[string]struct{}

// NewRelevanceFilter builds a filter from a list of names. A nil list yields
// a nil (absent) filter; note that an empty non-nil list is a filter that
// excludes everything.
func NewRelevanceFilter(names []string) RelevanceFilter {
	if names == nil {
		return nil
	}
	f := make(RelevanceFilter, len(names))
	for _, name := range names {
		f[name] = struct{}{}
	}
	return f
}

// Relevant reports whether a requirement name is identity-relevant.
func (f RelevanceFilter) Relevant(name string) bool {
	if f == nil {
		return true
	}
	_, ok := f[name]
	return ok
}

// RequirementSet keys RequirementRecord values by their full source
// reference. Iteration for hashing and dumping always follows the total
// order of ComponentRef, so the outcome is independent of insertion order.
type RequirementSet struct {
	records  map[ComponentRef]RequirementRecord
	relevant RelevanceFilter
}

// NewRequirementSet builds one direct record per given reference.
func NewRequirementSet(direct []ComponentRef, relevant RelevanceFilter) *RequirementSet {
	s := &RequirementSet{
		records:  make(map[ComponentRef]RequirementRecord, len(direct)),
		relevant: relevant,
	}
	for _, ref := range direct {
		s.records[ref] = NewRequirementRecord(ref, RequirementDirect)
	}
	return s
}

// AddIndirect folds the computed transitive closure into the set, one
// indirect record per reference. An existing entry for the same reference is
// overwritten: later calls win when resolution revisits a reference.
func (s *RequirementSet) AddIndirect(refs []ComponentRef) {
	for _, ref := range refs {
		s.records[ref] = NewRequirementRecord(ref, RequirementIndirect)
	}
}

// Refs returns a snapshot of the current keys, in no particular order. Used
// to propagate this set's requirements downstream.
func (s *RequirementSet) Refs() []ComponentRef {
	refs := make([]ComponentRef, 0, len(s.records))
	for ref := range s.records {
		refs = append(refs, ref)
	}
	return refs
}

// Len returns the number of requirements in the set.
func (s *RequirementSet) Len() int {
	return len(s.records)
}

func (s *RequirementSet) sortedRefs() []ComponentRef {
	refs := s.Refs()
	slices.SortFunc(refs, ComponentRef.Compare)
	return refs
}

// LookupByPrefix returns the single record whose reference text starts with
// prefix. Zero or multiple matches return ErrAmbiguousRequirement carrying
// the attempted prefix and the matches found; a match is never picked
// arbitrarily.
func (s *RequirementSet) LookupByPrefix(prefix string) (RequirementRecord, error) {
	var matches []ComponentRef
	for ref := range s.records {
		if strings.HasPrefix(ref.String(), prefix) {
			matches = append(matches, ref)
		}
	}
	if len(matches) == 1 {
		return s.records[matches[0]], nil
	}

	found := make([]string, len(matches))
	for i, ref := range matches {
		found[i] = ref.String()
	}
	slices.Sort(found)
	err := zerr.With(zerr.Wrap(ErrAmbiguousRequirement, "failed to resolve requirement prefix"), "prefix", prefix)
	return RequirementRecord{}, zerr.With(err, "matches", strings.Join(found, ", "))
}

// IdentityHash reduces the identity-relevant records to a content hash.
// Records are visited in ascending reference order and their identity lines
// joined with newlines; indirect records contribute empty lines, which keeps
// the buffer shape stable while hiding their versions.
func (s *RequirementSet) IdentityHash(hasher ContentHasher) string {
	lines := make([]string, 0, len(s.records))
	for _, ref := range s.sortedRefs() {
		if !s.relevant.Relevant(ref.Name) {
			continue
		}
		lines = append(lines, s.records[ref].IdentityLine())
	}
	return hasher.Sum([]byte(strings.Join(lines, "\n")))
}

// Dumps renders the human-readable requirement lines in ascending reference
// order. Records with an empty identity line are skipped; with a filter
// present, lines of filtered-out requirements carry a trailing " DEV" marker.
func (s *RequirementSet) Dumps() string {
	var lines []string
	for _, ref := range s.sortedRefs() {
		line := s.records[ref].IdentityLine()
		if line == "" {
			continue
		}
		if s.relevant != nil && !s.relevant.Relevant(ref.Name) {
			line += " DEV"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Serialize maps each reference text to the record's full text. The mapping
// is full fidelity and ignores the relevance filter entirely; it is not the
// inverse of Dumps or IdentityHash.
func (s *RequirementSet) Serialize() map[string]string {
	out := make(map[string]string, len(s.records))
	for ref, rec := range s.records {
		out[ref.String()] = rec.FullText()
	}
	return out
}

// DeserializeRequirementSet rebuilds a set from its structured form. Every
// entry comes back as a direct record and the relevance filter is absent:
// neither is recoverable from the structured form, a documented lossy
// round-trip.
func DeserializeRequirementSet(data map[string]string) (*RequirementSet, error) {
	s := &RequirementSet{records: make(map[ComponentRef]RequirementRecord, len(data))}
	for text := range data {
		ref, err := ParseComponentRef(text)
		if err != nil {
			return nil, err
		}
		s.records[ref] = NewRequirementRecord(ref, RequirementDirect)
	}
	return s, nil
}
