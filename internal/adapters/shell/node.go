package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hackeros/hbuild/internal/adapters/logger"
	"github.com/hackeros/hbuild/internal/core/ports"
)

const (
	RegistryNodeID graft.ID = "adapter.shell.registry"
	ExecutorNodeID graft.ID = "adapter.shell.executor"
)

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[ports.Executor]{
		ID:        ExecutorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RegistryNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			registry, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(registry, log), nil
		},
	})
}
