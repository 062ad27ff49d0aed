// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crate/internal/adapters/bundle"
	_ "go.trai.ch/crate/internal/adapters/config"
	_ "go.trai.ch/crate/internal/adapters/index"
	_ "go.trai.ch/crate/internal/adapters/logger"
	_ "go.trai.ch/crate/internal/adapters/modrinth"
	_ "go.trai.ch/crate/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/crate/internal/app"
	_ "go.trai.ch/crate/internal/engine/resolver"
)
