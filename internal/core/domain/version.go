package domain

import "strings"

// Version is a package version string, e.g. "1.2.11" or "2.0.0-rc1+build4".
type Version string

// Stable returns the version with pre-release and build markers stripped,
// so that hashing depends only on the release identity. "2.0.0-rc1+build4"
// stabilizes to "2.0.0"; an already stable version is returned unchanged.
func (v Version) Stable() Version {
	s := string(v)
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}
	return Version(s)
}

// String returns the version text.
func (v Version) String() string {
	return string(v)
}
