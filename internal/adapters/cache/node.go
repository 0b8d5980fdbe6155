package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/incinfo/internal/core/ports"
)

// NodeID is the unique identifier for the resolution cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.ResolutionCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResolutionCache, error) {
			return NewMemory(), nil
		},
	})
}
