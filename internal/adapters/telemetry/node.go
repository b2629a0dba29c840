package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hackeros/hbuild/internal/core/ports"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	// The no-op tracer is the default; the CLI swaps in the progrock recorder
	// when progress recording is requested.
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewNoOpTracer(), nil
		},
	})
}
