package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/shared/apperr"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	in := map[string]string{"name": "Vitrine"}
	require.NoError(t, store.Save("site-config", in))

	var out map[string]string
	require.NoError(t, store.Load("site-config", &out))
	assert.Equal(t, in, out)
	assert.True(t, store.Exists("site-config"))
}

func TestLoadMissingFileIsStorageError(t *testing.T) {
	store := New(t.TempDir())

	var out map[string]string
	err := store.Load("absent", &out)
	require.Error(t, err)
	assert.True(t, apperr.IsStorage(err))
	assert.False(t, store.Exists("absent"))
}

func TestLoadInvalidJSONIsStorageError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	store := New(dir)
	var out map[string]string
	err := store.Load("broken", &out)
	require.Error(t, err)
	assert.True(t, apperr.IsStorage(err))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	require.NoError(t, store.Save("brands", []string{"a", "b"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "brands.json", entries[0].Name())
}
