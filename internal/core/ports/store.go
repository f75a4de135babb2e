package ports

import "go.trai.ch/stash/internal/core/domain"

// IdentityStore persists and retrieves canonical identity files.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type IdentityStore interface {
	// Load reads and parses the identity file at path.
	// Returns domain.ErrMissingIdentityFile when the path is unreadable.
	Load(path string) (*domain.BuildIdentity, error)

	// Save writes the identity's canonical dump under its package ID and
	// returns the file path.
	Save(identity *domain.BuildIdentity, packageID string) (string, error)
}
