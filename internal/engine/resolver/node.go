package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/incinfo/internal/adapters/cache"
	"go.trai.ch/incinfo/internal/adapters/fs"
	"go.trai.ch/incinfo/internal/adapters/logger"
	"go.trai.ch/incinfo/internal/adapters/telemetry/progrock"
	"go.trai.ch/incinfo/internal/core/ports"
)

// NodeID is the unique identifier for the resolution engine Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.DocumentsNodeID,
			cache.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			paths, err := graft.Dep[ports.IncludePathResolver](ctx)
			if err != nil {
				return nil, err
			}
			docs, err := graft.Dep[ports.DocumentStore](ctx)
			if err != nil {
				return nil, err
			}
			c, err := graft.Dep[ports.ResolutionCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(paths, docs, c, log, tel), nil
		},
	})
}
