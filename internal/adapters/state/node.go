package state

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/hackeros/hbuild/internal/adapters/fs"
	"github.com/hackeros/hbuild/internal/core/ports"
)

const NodeID graft.ID = "adapter.record_store_factory"

// StoreFactory opens the record store for a project root. The ledger path
// depends on the folder being built, so the store itself cannot be a
// singleton node.
type StoreFactory func(root string) (ports.RecordStore, error)

func init() {
	graft.Register(graft.Node[StoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (StoreFactory, error) {
			return func(root string) (ports.RecordStore, error) {
				return NewStore(filepath.Join(fs.BuildDir(root), FileName))
			}, nil
		},
	})
}
