// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/six/internal/adapters/builder"
	_ "go.trai.ch/six/internal/adapters/cache"
	_ "go.trai.ch/six/internal/adapters/config"
	_ "go.trai.ch/six/internal/adapters/logger"
	_ "go.trai.ch/six/internal/adapters/query"
	_ "go.trai.ch/six/internal/adapters/source"
	// Register app nodes.
	_ "go.trai.ch/six/internal/app"
)
