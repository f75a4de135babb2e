package hashing

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stash/internal/core/domain"
)

// NodeID is the unique identifier for the identity hasher Graft node.
const NodeID graft.ID = "adapter.hasher"

func init() {
	graft.Register(graft.Node[domain.ContentHasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.ContentHasher, error) {
			return NewSHA256(), nil
		},
	})
}
