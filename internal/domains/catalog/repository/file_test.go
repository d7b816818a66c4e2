package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/catalog"
)

func newTestRepo(t *testing.T) catalog.Repository {
	t.Helper()
	store := filestore.New(t.TempDir())
	require.NoError(t, store.Save(collection, []catalog.Category{}))
	return NewFileRepository(store)
}

func seedCategory(t *testing.T, repo catalog.Repository, id, slug string) {
	t.Helper()
	require.NoError(t, repo.AddCategory(context.Background(), catalog.Category{
		ID:   id,
		Name: "Électricité",
		Slug: slug,
	}))
}

func TestCategorySlugUnique(t *testing.T) {
	repo := newTestRepo(t)
	seedCategory(t, repo, "c1", "electricite")

	err := repo.AddCategory(context.Background(), catalog.Category{ID: "c2", Name: "Autre", Slug: "electricite"})
	assert.ErrorIs(t, err, catalog.ErrSlugTaken)

	slug := "electricite"
	seedCategory(t, repo, "c3", "serrurerie")
	_, err = repo.UpdateCategory(context.Background(), "c3", catalog.CategoryPatch{Slug: &slug})
	assert.ErrorIs(t, err, catalog.ErrSlugTaken)
}

func TestServiceSlugUniqueWithinCategory(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedCategory(t, repo, "c1", "electricite")
	seedCategory(t, repo, "c2", "serrurerie")

	require.NoError(t, repo.AddService(ctx, catalog.Service{ID: "s1", CategoryID: "c1", Name: "Dépannage", Slug: "depannage"}))

	// Same slug in the same category is rejected.
	err := repo.AddService(ctx, catalog.Service{ID: "s2", CategoryID: "c1", Name: "Autre", Slug: "depannage"})
	assert.ErrorIs(t, err, catalog.ErrSlugTaken)

	// Same slug in another category is fine.
	require.NoError(t, repo.AddService(ctx, catalog.Service{ID: "s3", CategoryID: "c2", Name: "Dépannage", Slug: "depannage"}))

	err = repo.AddService(ctx, catalog.Service{ID: "s4", CategoryID: "missing", Name: "X", Slug: "x"})
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)
}

func TestDeleteCategoryGuardedByServices(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedCategory(t, repo, "c1", "electricite")

	require.NoError(t, repo.AddService(ctx, catalog.Service{ID: "s1", CategoryID: "c1", Name: "Dépannage", Slug: "depannage"}))

	_, err := repo.DeleteCategory(ctx, "c1")
	assert.ErrorIs(t, err, catalog.ErrCategoryHasServices)

	removed, err := repo.DeleteService(ctx, "s1")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = repo.DeleteCategory(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteCategory(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListReturnsNestedShape(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedCategory(t, repo, "c1", "electricite")

	require.NoError(t, repo.AddService(ctx, catalog.Service{
		ID: "s1", CategoryID: "c1", Name: "Mise aux normes", Slug: "mise-aux-normes",
		Prestations: []catalog.Prestation{{Title: "Tableau", Items: []string{"diagnostic"}}},
	}))

	list, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Services, 1)
	assert.Equal(t, "mise-aux-normes", list[0].Services[0].Slug)
	require.Len(t, list[0].Services[0].Prestations, 1)
	// Normalize keeps list fields non-nil for the UI.
	assert.NotNil(t, list[0].Services[0].FAQs)
}
