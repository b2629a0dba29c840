package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hackeros/hbuild/internal/adapters/config" //nolint:depguard // wired in app layer
	"github.com/hackeros/hbuild/internal/adapters/logger" //nolint:depguard // wired in app layer
	"github.com/hackeros/hbuild/internal/adapters/shell"  //nolint:depguard // wired in app layer
	"github.com/hackeros/hbuild/internal/adapters/state"
	"github.com/hackeros/hbuild/internal/adapters/telemetry"
	"github.com/hackeros/hbuild/internal/core/ports"
	"github.com/hackeros/hbuild/internal/engine/orchestrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			orchestrator.NodeID,
			state.NodeID,
			shell.ExecutorNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			shell.RegistryNodeID,
			shell.ExecutorNodeID,
			config.NodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}
	storeFactory, err := graft.Dep[state.StoreFactory](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, orch, storeFactory, executor, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	registry, err := graft.Dep[*shell.Registry](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	storeFactory, err := graft.Dep[state.StoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		Registry:     registry,
		Executor:     executor,
		ConfigLoader: loader,
		StoreFactory: storeFactory,
	}, nil
}
