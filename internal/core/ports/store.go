package ports

import "github.com/hackeros/hbuild/internal/core/domain"

// RecordStore persists per-language build records. The store is purely
// informational bookkeeping: the staleness engine decides rebuilds from
// filesystem timestamps alone and never reads it.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record for a language. Returns nil, nil if not found.
	Get(language string) (*domain.BuildRecord, error)

	// Put stores the record.
	Put(record domain.BuildRecord) error

	// All returns every stored record.
	All() ([]domain.BuildRecord, error)
}
