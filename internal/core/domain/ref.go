// Package domain contains the core domain model for package identity
// computation: component references, requirement snapshots and the build
// identity aggregate that reduces them to a cache key.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ComponentRef names a specific built package. Name and Version are
// mandatory; User and Channel form an optional namespace and PackageID is an
// opaque identity digest of a concrete binary. The type is comparable and is
// used as a map key and sort key throughout.
//
// Text syntax: name/version[@user/channel][:package_id].
type ComponentRef struct {
	Name      string
	Version   Version
	User      string
	Channel   string
	PackageID string
}

// ParseComponentRef parses a reference text into a ComponentRef.
// It returns ErrMalformedReference when the text does not follow the
// name/version[@user/channel][:package_id] syntax.
func ParseComponentRef(text string) (ComponentRef, error) {
	malformed := func() (ComponentRef, error) {
		return ComponentRef{}, zerr.With(zerr.Wrap(ErrMalformedReference, "failed to parse component reference"), "reference", text)
	}

	var ref ComponentRef
	body := text

	if i := strings.LastIndex(body, ":"); i >= 0 {
		ref.PackageID = body[i+1:]
		body = body[:i]
		if ref.PackageID == "" {
			return malformed()
		}
	}

	if i := strings.Index(body, "@"); i >= 0 {
		user, channel, ok := strings.Cut(body[i+1:], "/")
		if !ok || user == "" || channel == "" {
			return malformed()
		}
		ref.User = user
		ref.Channel = channel
		body = body[:i]
	}

	name, version, ok := strings.Cut(body, "/")
	if !ok || name == "" || version == "" {
		return malformed()
	}
	ref.Name = name
	ref.Version = Version(version)

	return ref, nil
}

// String renders the reference in its canonical text form. The result
// round-trips through ParseComponentRef.
func (r ComponentRef) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteByte('/')
	b.WriteString(string(r.Version))
	if r.User != "" {
		b.WriteByte('@')
		b.WriteString(r.User)
		b.WriteByte('/')
		b.WriteString(r.Channel)
	}
	if r.PackageID != "" {
		b.WriteByte(':')
		b.WriteString(r.PackageID)
	}
	return b.String()
}

// Compare defines a total order over references: field-wise lexicographic on
// name, version, user, channel and package identity. Iteration orders for
// hashing and dumping are derived from it, so it must stay stable.
func (r ComponentRef) Compare(other ComponentRef) int {
	if c := strings.Compare(r.Name, other.Name); c != 0 {
		return c
	}
	if c := strings.Compare(string(r.Version), string(other.Version)); c != 0 {
		return c
	}
	if c := strings.Compare(r.User, other.User); c != 0 {
		return c
	}
	if c := strings.Compare(r.Channel, other.Channel); c != 0 {
		return c
	}
	return strings.Compare(r.PackageID, other.PackageID)
}
