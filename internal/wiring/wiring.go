// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xcscheme/internal/adapters/config"
	_ "go.trai.ch/xcscheme/internal/adapters/logger"
	_ "go.trai.ch/xcscheme/internal/adapters/store"
	_ "go.trai.ch/xcscheme/internal/adapters/telemetry"
	_ "go.trai.ch/xcscheme/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/xcscheme/internal/app"
)
