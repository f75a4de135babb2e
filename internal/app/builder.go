package app

import (
	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
)

// Components bundles the fully wired application objects handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
	Loader ports.ManifestLoader
	Store  ports.IdentityStore
	Hasher domain.ContentHasher
}
