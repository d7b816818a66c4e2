package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/brand"
)

func newTestRepo(t *testing.T) brand.Repository {
	t.Helper()
	store := filestore.New(t.TempDir())
	require.NoError(t, store.Save(collection, []brand.Brand{}))
	return NewFileRepository(store)
}

func TestBrandAddListDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, brand.Brand{ID: "b1", Name: "Legrand", Category: "electrique"}))
	require.NoError(t, repo.Add(ctx, brand.Brand{ID: "b2", Name: "Schneider"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Legrand", list[0].Name)

	removed, err := repo.Delete(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, removed)

	// Deleting the same id again reports absence, not an error.
	removed, err = repo.Delete(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, removed)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b2", list[0].ID)
}

func TestBrandUpdatePartial(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, brand.Brand{ID: "b1", Name: "Legrand", Website: "https://legrand.fr"}))

	name := "Legrand France"
	updated, err := repo.Update(ctx, "b1", brand.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Legrand France", updated.Name)
	assert.Equal(t, "https://legrand.fr", updated.Website)

	_, err = repo.Update(ctx, "missing", brand.Patch{Name: &name})
	assert.ErrorIs(t, err, brand.ErrNotFound)
}
