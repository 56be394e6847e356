package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcscheme/internal/core/ports"
)

// NodeID is the unique identifier for the scheme store Graft node.
const NodeID graft.ID = "adapter.scheme_store"

func init() {
	graft.Register(graft.Node[ports.SchemeStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SchemeStore, error) {
			return NewStore(), nil
		},
	})
}
