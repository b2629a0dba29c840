// Package state persists per-language build records to a flat JSON file
// under the build directory. The ledger is informational only; staleness is
// always recomputed from filesystem timestamps.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/hackeros/hbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the ledger file name inside the build directory.
const FileName = "hbuild_state.json"

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildRecord
}

// NewStore creates a RecordStore backed by the file at the given path,
// loading any existing records.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read build record store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal build record store")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build record store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for build record store")
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec // ledger is world-readable
		return zerr.Wrap(err, "failed to write build record store")
	}

	return nil
}

// Get retrieves the record for a language.
func (s *Store) Get(language string) (*domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[language]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and flushes the ledger to disk.
func (s *Store) Put(record domain.BuildRecord) error {
	s.mu.Lock()
	s.cache[record.Language] = record
	s.mu.Unlock()

	return s.save()
}

// All returns every stored record, ordered by language name.
func (s *Store) All() ([]domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.BuildRecord, 0, len(s.cache))
	for _, r := range s.cache {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Language < records[j].Language })
	return records, nil
}
