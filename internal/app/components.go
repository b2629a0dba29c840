package app

import (
	"github.com/hackeros/hbuild/internal/adapters/shell"
	"github.com/hackeros/hbuild/internal/adapters/state"
	"github.com/hackeros/hbuild/internal/core/ports"
)

// Components bundles the fully wired application with the adapters the entry
// point and tests need direct access to.
type Components struct {
	App          *App
	Logger       ports.Logger
	Registry     *shell.Registry
	Executor     ports.Executor
	ConfigLoader ports.ConfigLoader
	StoreFactory state.StoreFactory
}
