// Package ports defines the interfaces between the core and its adapters.
package ports

import "go.trai.ch/stash/internal/core/domain"

// ManifestLoader loads a build manifest into a resolved build input.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and parses the manifest at path.
	Load(path string) (*domain.BuildInput, error)
}
