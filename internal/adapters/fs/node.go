package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hackeros/hbuild/internal/core/ports"
)

const LocatorNodeID graft.ID = "adapter.fs.locator"

func init() {
	graft.Register(graft.Node[ports.SourceLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SourceLocator, error) {
			return NewLocator(), nil
		},
	})
}
