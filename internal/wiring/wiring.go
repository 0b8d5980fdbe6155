// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/incinfo/internal/adapters/cache"
	_ "go.trai.ch/incinfo/internal/adapters/config"
	_ "go.trai.ch/incinfo/internal/adapters/fs"
	_ "go.trai.ch/incinfo/internal/adapters/logger"
	_ "go.trai.ch/incinfo/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/incinfo/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/incinfo/internal/app"
	_ "go.trai.ch/incinfo/internal/engine/resolver"
)
