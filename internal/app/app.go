// Package app implements the application layer for stash.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// App computes and persists package identities from build manifests.
type App struct {
	loader ports.ManifestLoader
	hasher domain.ContentHasher
	store  ports.IdentityStore
	logger ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	hasher domain.ContentHasher,
	store ports.IdentityStore,
	logger ports.Logger,
) *App {
	return &App{
		loader: loader,
		hasher: hasher,
		store:  store,
		logger: logger,
	}
}

// Result pairs one manifest with its computed identity.
type Result struct {
	// Path is the manifest the identity was computed from.
	Path string
	// PackageID is the computed content address.
	PackageID string
	// Identity is the assembled identity.
	Identity *domain.BuildIdentity
	// File is where the identity file was written; empty when not persisted.
	File string
}

// Compute loads the manifest at path, assembles its identity and computes
// the package ID. With persist set, the canonical dump is written to the
// store under that ID.
func (a *App) Compute(_ context.Context, path string, persist bool) (*Result, error) {
	input, err := a.loader.Load(path)
	if err != nil {
		return nil, err
	}

	identity := input.Identity()
	id := identity.PackageID(a.hasher)
	result := &Result{Path: path, PackageID: id, Identity: identity}

	if persist {
		file, err := a.store.Save(identity, id)
		if err != nil {
			return nil, err
		}
		result.File = file
	}

	a.logger.Info(fmt.Sprintf("computed package identity %s for %s", id, path))
	return result, nil
}

// ComputeAll computes identities for several manifests concurrently. Results
// keep the order of paths; the first failure cancels the remaining work.
func (a *App) ComputeAll(ctx context.Context, paths []string, persist bool) ([]*Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]*Result, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := a.Compute(ctx, path, persist)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Show loads a persisted identity file and recomputes its package ID.
func (a *App) Show(path string) (*Result, error) {
	identity, err := a.store.Load(path)
	if err != nil {
		return nil, err
	}
	return &Result{
		Path:      path,
		PackageID: identity.PackageID(a.hasher),
		Identity:  identity,
	}, nil
}
