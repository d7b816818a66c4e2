package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/realization"
)

func newTestRepo(t *testing.T) realization.Repository {
	t.Helper()
	store := filestore.New(t.TempDir())
	require.NoError(t, store.Save(collection, []realization.Realization{}))
	return NewFileRepository(store)
}

func TestListFeaturedFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, realization.Realization{ID: "r1", Title: "Portail Clichy", Featured: true}))
	require.NoError(t, repo.Add(ctx, realization.Realization{ID: "r2", Title: "Tableau Levallois"}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	featured, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "r1", featured[0].ID)
}

func TestFeaturedToggleViaPatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, realization.Realization{ID: "r1", Title: "Portail Clichy"}))

	featured := true
	updated, err := repo.Update(ctx, "r1", realization.Patch{Featured: &featured})
	require.NoError(t, err)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Portail Clichy", updated.Title)

	list, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
