package domain

import (
	"slices"
	"strings"
)

// BuildIdentity aggregates the three inputs that decide whether a previously
// built artifact can be reused: build settings, build options and the
// requirement graph. It owns pruned snapshots (what feeds the hash) next to
// full snapshots (provenance), and reduces everything to one package ID.
//
// An identity is built once per build evaluation and treated as read-mostly
// afterwards. It must not be shared across concurrent evaluations, and must
// not be mutated after the first PackageID call.
type BuildIdentity struct {
	// Settings is the pruned snapshot feeding the hash; FullSettings the
	// untouched original.
	Settings     *SettingsValues
	FullSettings *SettingsValues

	// Options is the pruned snapshot with dependency-scoped values cleared;
	// FullOptions the untouched original.
	Options     *OptionsValues
	FullOptions *OptionsValues

	// Requires feeds the hash; FullRequires lists the complete closure for
	// provenance.
	Requires     *RequirementSet
	FullRequires RequirementManifest

	// Scope is optional free-form scope data; nil when absent.
	Scope *ScopeValues

	// relevant mirrors the requirement set's filter; the options hash needs
	// it again.
	relevant RelevanceFilter

	// packageID memoizes the computed hash. Never invalidated: mutating the
	// identity after the first PackageID call leaves it stale.
	packageID string
}

// NewBuildIdentity assembles an identity from resolved inputs: the settings
// and options snapshots, the direct requirements, the computed transitive
// closure and the relevance filter (nil when every requirement counts).
func NewBuildIdentity(
	settings *SettingsValues,
	options *OptionsValues,
	direct []ComponentRef,
	indirect []ComponentRef,
	relevant RelevanceFilter,
) *BuildIdentity {
	pruned := options.Copy()
	pruned.ClearIndirect()

	manifest := RequirementManifest(slices.Clone(direct))
	manifest.Extend(indirect)

	requires := NewRequirementSet(direct, relevant)
	requires.AddIndirect(indirect)

	return &BuildIdentity{
		Settings:     settings.Copy(),
		FullSettings: settings,
		Options:      pruned,
		FullOptions:  options,
		Requires:     requires,
		FullRequires: manifest,
		relevant:     relevant,
	}
}

// ParseBuildIdentity parses a canonical dump. The requirement set is rebuilt
// from the full_requires section with an absent relevance filter: neither
// the direct/indirect split nor the filter is persisted in dump form, an
// accepted policy loss.
func ParseBuildIdentity(text string) (*BuildIdentity, error) {
	sections, err := parseSections(text, identitySections)
	if err != nil {
		return nil, err
	}

	settings, err := LoadSettingsValues(sections["settings"])
	if err != nil {
		return nil, err
	}
	fullSettings, err := LoadSettingsValues(sections["full_settings"])
	if err != nil {
		return nil, err
	}
	options, err := LoadOptionsValues(sections["options"])
	if err != nil {
		return nil, err
	}
	fullOptions, err := LoadOptionsValues(sections["full_options"])
	if err != nil {
		return nil, err
	}
	fullRequires, err := ParseRequirementManifest(sections["full_requires"])
	if err != nil {
		return nil, err
	}

	var scope *ScopeValues
	if sections["scope"] != "" {
		scope, err = LoadScopeValues(sections["scope"])
		if err != nil {
			return nil, err
		}
	}

	return &BuildIdentity{
		Settings:     settings,
		FullSettings: fullSettings,
		Options:      options,
		FullOptions:  fullOptions,
		Requires:     NewRequirementSet(fullRequires, nil),
		FullRequires: fullRequires,
		Scope:        scope,
	}, nil
}

// PackageID reduces the identity to its content address: the hash of the
// settings, options and requirements sub-hashes joined by newlines. The
// concatenation order is fixed and significant; changing it changes every
// existing package ID. The result is computed once and memoized.
func (b *BuildIdentity) PackageID(hasher ContentHasher) string {
	if b.packageID != "" {
		return b.packageID
	}
	parts := []string{
		b.Settings.IdentityHash(hasher),
		b.Options.IdentityHash(hasher, b.relevant),
		b.Requires.IdentityHash(hasher),
	}
	b.packageID = hasher.Sum([]byte(strings.Join(parts, "\n")))
	return b.packageID
}

func indent(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = "    " + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Dumps renders the canonical text form: the fixed section order with
// four-space indented bodies. The scope body is omitted entirely when absent.
func (b *BuildIdentity) Dumps() string {
	result := []string{
		"[settings]", indent(b.Settings.Dumps()),
		"\n[requires]", indent(b.Requires.Dumps()),
		"\n[options]", indent(b.Options.Dumps()),
		"\n[full_settings]", indent(b.FullSettings.Dumps()),
		"\n[full_requires]", indent(b.FullRequires.Dumps()),
		"\n[full_options]", indent(b.FullOptions.Dumps()),
		"\n[scope]",
	}
	if b.Scope != nil {
		result = append(result, indent(b.Scope.Dumps()))
	}
	return strings.Join(result, "\n")
}

// Equal reports textual equality of canonical dumps. Two identities with
// logically equivalent but differently rendered sub-values compare unequal;
// the contract is deliberately textual, not structural.
func (b *BuildIdentity) Equal(other *BuildIdentity) bool {
	return b.Dumps() == other.Dumps()
}

// IdentityRecord is the structured (machine-readable) form of an identity.
// Scope is deliberately absent, asymmetric with the canonical dump.
type IdentityRecord struct {
	Settings     map[string]string `json:"settings" yaml:"settings"`
	FullSettings map[string]string `json:"full_settings" yaml:"full_settings"`
	Options      map[string]string `json:"options" yaml:"options"`
	FullOptions  map[string]string `json:"full_options" yaml:"full_options"`
	Requires     map[string]string `json:"requires" yaml:"requires"`
	FullRequires []string          `json:"full_requires" yaml:"full_requires"`
}

// Serialize returns the structured form of the identity.
func (b *BuildIdentity) Serialize() IdentityRecord {
	return IdentityRecord{
		Settings:     b.Settings.Serialize(),
		FullSettings: b.FullSettings.Serialize(),
		Options:      b.Options.Serialize(),
		FullOptions:  b.FullOptions.Serialize(),
		Requires:     b.Requires.Serialize(),
		FullRequires: b.FullRequires.Serialize(),
	}
}

// DeserializeBuildIdentity rebuilds an identity from its structured form.
// Scope comes back absent.
func DeserializeBuildIdentity(rec IdentityRecord) (*BuildIdentity, error) {
	requires, err := DeserializeRequirementSet(rec.Requires)
	if err != nil {
		return nil, err
	}
	fullRequires, err := ParseRequirementManifest(strings.Join(rec.FullRequires, "\n"))
	if err != nil {
		return nil, err
	}
	return &BuildIdentity{
		Settings:     DeserializeSettingsValues(rec.Settings),
		FullSettings: DeserializeSettingsValues(rec.FullSettings),
		Options:      DeserializeOptionsValues(rec.Options),
		FullOptions:  DeserializeOptionsValues(rec.FullOptions),
		Requires:     requires,
		FullRequires: fullRequires,
	}, nil
}
