package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hackeros/hbuild/internal/adapters/logger"
	"github.com/hackeros/hbuild/internal/adapters/shell"
	"github.com/hackeros/hbuild/internal/adapters/telemetry"
	"github.com/hackeros/hbuild/internal/core/ports"
	"github.com/hackeros/hbuild/internal/engine/native"
)

const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{native.NodeID, shell.ExecutorNodeID, logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			engine, err := graft.Dep[*native.Engine](ctx)
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
			return New(engine, executor, log, tracer), nil
		},
	})
}
