package watchlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWatchlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watchlist.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSnapshotLoadsAndNormalizes(t *testing.T) {
	path := writeWatchlist(t, `[{"id":1,"name":"John Smith"},{"id":2,"name":"Chen, Bob"}]`)
	loader := NewLoader(path)

	entries, err := loader.Snapshot()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, "John Smith", entries[0].Name)
	assert.Equal(t, "john smith", entries[0].Normalized)
	assert.Equal(t, "bob chen", entries[1].Normalized)
	assert.Equal(t, 2, loader.Size())
}

func TestSnapshotCachesAcrossCalls(t *testing.T) {
	path := writeWatchlist(t, `[{"id":1,"name":"John Smith"}]`)
	loader := NewLoader(path)

	_, err := loader.Snapshot()
	require.NoError(t, err)

	// Removing the file does not invalidate the cached snapshot.
	require.NoError(t, os.Remove(path))
	entries, err := loader.Snapshot()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReloadReplacesSnapshot(t *testing.T) {
	path := writeWatchlist(t, `[{"id":1,"name":"John Smith"}]`)
	loader := NewLoader(path)

	_, err := loader.Snapshot()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"name":"John Smith"},{"id":2,"name":"Jane Doe"}]`), 0o644))
	require.NoError(t, loader.Reload())

	entries, err := loader.Snapshot()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestMissingDocument(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.json"))

	_, err := loader.Snapshot()
	assert.ErrorIs(t, err, ErrMissing)
	assert.False(t, loader.Available())
}

func TestMalformedDocument(t *testing.T) {
	path := writeWatchlist(t, `{"not":"an array"}`)
	loader := NewLoader(path)

	_, err := loader.Snapshot()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissing)
}

func TestEmptyDocument(t *testing.T) {
	path := writeWatchlist(t, `[]`)
	loader := NewLoader(path)

	entries, err := loader.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
