// Package store persists identity files, content-addressed by package ID.
package store

import (
	"os"
	"path/filepath"

	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the name of the identity file inside a package directory.
const FileName = "stashinfo.txt"

var _ ports.IdentityStore = (*Store)(nil)

// Store implements ports.IdentityStore on the local filesystem. Each saved
// identity lives at <root>/<package-id>/stashinfo.txt.
type Store struct {
	root string
	fast domain.ContentHasher
}

// NewStore creates a store rooted at root. The fast hasher is used to detect
// unchanged files on save; it never contributes to an identity.
func NewStore(root string, fast domain.ContentHasher) *Store {
	return &Store{root: filepath.Clean(root), fast: fast}
}

// Load reads and parses the identity file at path. Any unreadable path
// yields domain.ErrMissingIdentityFile carrying the path.
func (s *Store) Load(path string) (*domain.BuildIdentity, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingIdentityFile, "failed to read identity file"), "path", path)
	}
	return domain.ParseBuildIdentity(string(data))
}

// Save writes the identity's canonical dump under its package ID and returns
// the file path. A file whose content already matches is left untouched so
// its mtime survives repeated builds.
func (s *Store) Save(identity *domain.BuildIdentity, packageID string) (string, error) {
	dir := filepath.Join(s.root, packageID)
	path := filepath.Join(dir, FileName)
	data := []byte(identity.Dumps())

	if existing, err := os.ReadFile(path); err == nil { //nolint:gosec // path is derived from the store root
		if s.fast.Sum(existing) == s.fast.Sum(data) {
			return path, nil
		}
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create identity store directory"), "dir", dir)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // identity files are not secret
		return "", zerr.With(zerr.Wrap(err, "failed to write identity file"), "path", path)
	}
	return path, nil
}
