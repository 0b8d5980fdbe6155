package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/incinfo/internal/core/ports"
)

const (
	WalkerNodeID    graft.ID = "adapter.fs.walker"
	DocumentsNodeID graft.ID = "adapter.fs.documents"
	ResolverNodeID  graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.DocumentStore]{
		ID:        DocumentsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentStore, error) {
			return NewDocuments(), nil
		},
	})

	// The resolver keeps the workspace index, so the app and the engine must share it.
	graft.Register(graft.Node[ports.IncludePathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{DocumentsNodeID, WalkerNodeID},
		Run: func(ctx context.Context) (ports.IncludePathResolver, error) {
			docs, err := graft.Dep[ports.DocumentStore](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(docs, walker), nil
		},
	})
}
