package domain

import "strings"

// RequirementKind distinguishes how a requirement entered the dependency
// graph, which in turn decides how much of it feeds the identity hash.
type RequirementKind int

const (
	// RequirementDirect marks a dependency declared by the package being
	// identified. Its name and stabilized version feed the hash.
	RequirementDirect RequirementKind = iota

	// RequirementIndirect marks a transitively inherited dependency. It
	// contributes no distinguishing information to the hash: a version bump
	// deep in the graph must not invalidate the cache of packages that do not
	// depend on it directly.
	RequirementIndirect
)

// RequirementRecord is the per-dependency contribution to an identity
// computation. Ref always carries the full-fidelity source reference for
// provenance; the unexported identity fields carry only what the record's
// kind allows into the hash. Records are immutable after construction.
type RequirementRecord struct {
	// Ref is the source reference, copied verbatim and never reduced.
	Ref ComponentRef

	// Kind selects the identity contribution policy.
	Kind RequirementKind

	// Identity fields. Direct records carry name and stabilized version.
	// user, channel and packageID are reserved: defined in the line format
	// but never populated by any current construction path.
	name      string
	version   string
	user      string
	channel   string
	packageID string
}

// NewRequirementRecord derives a record from an already parsed reference.
func NewRequirementRecord(ref ComponentRef, kind RequirementKind) RequirementRecord {
	rec := RequirementRecord{Ref: ref, Kind: kind}
	if kind == RequirementDirect {
		rec.name = ref.Name
		rec.version = string(ref.Version.Stable())
	}
	return rec
}

// ParseRequirementRecord parses a reference text and derives a record from
// it. It returns ErrMalformedReference when the text does not parse.
func ParseRequirementRecord(text string, kind RequirementKind) (RequirementRecord, error) {
	ref, err := ParseComponentRef(text)
	if err != nil {
		return RequirementRecord{}, err
	}
	return NewRequirementRecord(ref, kind), nil
}

// IdentityLine is the record's contribution to the identity hash: the
// non-empty fields among name, version, user, channel and package identity
// joined by "/". Empty fields are omitted entirely, so an indirect record
// yields the empty string.
func (r RequirementRecord) IdentityLine() string {
	parts := make([]string, 0, 5)
	for _, field := range []string{r.name, r.version, r.user, r.channel, r.packageID} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, "/")
}

// FullText returns the verbatim reference text, used for provenance and
// structured export, never for hashing.
func (r RequirementRecord) FullText() string {
	return r.Ref.String()
}
