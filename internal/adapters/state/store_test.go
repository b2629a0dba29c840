package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hackeros/hbuild/internal/adapters/state"
	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build", state.FileName)
	store, err := state.NewStore(path)
	require.NoError(t, err)

	got, err := store.Get("c")
	require.NoError(t, err)
	assert.Nil(t, got)

	rec := domain.BuildRecord{
		Language:  "c",
		Target:    "/proj/edit",
		Digest:    "00000000deadbeef",
		Status:    domain.StatusSucceeded,
		Duration:  2 * time.Second,
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, store.Put(rec))

	got, err = store.Get("c")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), state.FileName)

	store, err := state.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.BuildRecord{Language: "rust", Status: domain.StatusFailed}))

	reopened, err := state.NewStore(path)
	require.NoError(t, err)

	got, err := reopened.Get("rust")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusFailed, got.Status)
}

func TestStore_All_SortedByLanguage(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), state.FileName))
	require.NoError(t, err)

	require.NoError(t, store.Put(domain.BuildRecord{Language: "rust", Status: domain.StatusSucceeded}))
	require.NoError(t, store.Put(domain.BuildRecord{Language: "c", Status: domain.StatusSucceeded}))
	require.NoError(t, store.Put(domain.BuildRecord{Language: "python", Status: domain.StatusSkipped}))

	records, err := store.All()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].Language)
	assert.Equal(t, "python", records[1].Language)
	assert.Equal(t, "rust", records[2].Language)
}

func TestStore_PutOverwrites(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), state.FileName))
	require.NoError(t, err)

	require.NoError(t, store.Put(domain.BuildRecord{Language: "c", Status: domain.StatusFailed}))
	require.NoError(t, store.Put(domain.BuildRecord{Language: "c", Status: domain.StatusSucceeded}))

	records, err := store.All()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusSucceeded, records[0].Status)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), state.FileName)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := state.NewStore(path)
	require.Error(t, err)
}
