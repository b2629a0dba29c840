package native

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/hackeros/hbuild/internal/adapters/logger"
	"github.com/hackeros/hbuild/internal/adapters/shell"
	"github.com/hackeros/hbuild/internal/adapters/telemetry"
	"github.com/hackeros/hbuild/internal/core/ports"
)

const NodeID graft.ID = "engine.native"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.LocatorNodeID, shell.ExecutorNodeID, logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			locator, err := graft.Dep[ports.SourceLocator](ctx)
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
			return New(locator, executor, log, tracer), nil
		},
	})
}
