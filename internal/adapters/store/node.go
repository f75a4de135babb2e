package store

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/stash/internal/adapters/hashing"
	"go.trai.ch/stash/internal/core/ports"
)

// NodeID is the unique identifier for the identity store Graft node.
const NodeID graft.ID = "adapter.identity_store"

// DefaultRoot is the store location used when STASH_HOME is not set.
const DefaultRoot = ".stash"

func init() {
	graft.Register(graft.Node[ports.IdentityStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IdentityStore, error) {
			root := os.Getenv("STASH_HOME")
			if root == "" {
				root = DefaultRoot
			}
			return NewStore(root, hashing.NewXX64()), nil
		},
	})
}
