package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/incinfo/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/incinfo/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/incinfo/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/incinfo/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/incinfo/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/incinfo/internal/core/ports"
	"go.trai.ch/incinfo/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the command line needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.DocumentsNodeID,
			fs.ResolverNodeID,
			resolver.NodeID,
			watcher.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	docs, err := graft.Dep[ports.DocumentStore](ctx)
	if err != nil {
		return nil, err
	}
	paths, err := graft.Dep[ports.IncludePathResolver](ctx)
	if err != nil {
		return nil, err
	}
	engine, err := graft.Dep[*resolver.Engine](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, docs, paths, engine, w, telemetry, log), nil
}
