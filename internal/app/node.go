package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stash/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/stash/internal/adapters/hashing" //nolint:depguard // Wired in app layer
	"go.trai.ch/stash/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/stash/internal/adapters/store"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			hashing.NodeID,
			store.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[domain.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}

			identityStore, err := graft.Dep[ports.IdentityStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, hasher, identityStore, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			hashing.NodeID,
			store.NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	identityStore, err := graft.Dep[ports.IdentityStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[domain.ContentHasher](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Loader: loader,
		Store:  identityStore,
		Hasher: hasher,
	}, nil
}
