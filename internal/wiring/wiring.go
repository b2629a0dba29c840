// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/hackeros/hbuild/internal/adapters/config"
	_ "github.com/hackeros/hbuild/internal/adapters/fs"
	_ "github.com/hackeros/hbuild/internal/adapters/logger"
	_ "github.com/hackeros/hbuild/internal/adapters/shell"
	_ "github.com/hackeros/hbuild/internal/adapters/state"
	_ "github.com/hackeros/hbuild/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/hackeros/hbuild/internal/app"
	_ "github.com/hackeros/hbuild/internal/engine/native"
	_ "github.com/hackeros/hbuild/internal/engine/orchestrator"
)
