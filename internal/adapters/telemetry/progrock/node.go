package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/incinfo/internal/core/ports"
)

// NodeID is the unique identifier for the resolution telemetry node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			// One tape per process; every resolution of the session records into it.
			return New(), nil
		},
	})
}
