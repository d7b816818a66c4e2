package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/testimonial"
)

func newTestRepo(t *testing.T) testimonial.Repository {
	t.Helper()
	store := filestore.New(t.TempDir())
	require.NoError(t, store.Save(collection, fileDocument{Testimonials: []testimonial.Testimonial{}}))
	return NewFileRepository(store)
}

func TestStatsTrackMutations(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalReviews)

	require.NoError(t, repo.Add(ctx, testimonial.Testimonial{ID: "t1", Name: "Marie", Rating: 5}))
	require.NoError(t, repo.Add(ctx, testimonial.Testimonial{ID: "t2", Name: "Paul", Rating: 4}))
	require.NoError(t, repo.Add(ctx, testimonial.Testimonial{ID: "t3", Name: "Luc", Rating: 2}))

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalReviews)
	// 11/3 = 3.666... rounds to 3.7
	assert.Equal(t, 3.7, stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 0, 4: 1, 5: 1}, stats.Distribution)

	removed, err := repo.Delete(ctx, "t3")
	require.NoError(t, err)
	require.True(t, removed)

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalReviews)
	assert.Equal(t, 4.5, stats.AverageRating)
	assert.Equal(t, 0, stats.Distribution[2])
}

func TestUpdateRatingRecomputesStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, testimonial.Testimonial{ID: "t1", Name: "Marie", Rating: 2}))

	rating := 5
	updated, err := repo.Update(ctx, "t1", testimonial.Patch{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, stats.AverageRating)
	assert.Equal(t, 1, stats.Distribution[5])

	_, err = repo.Update(ctx, "missing", testimonial.Patch{Rating: &rating})
	assert.ErrorIs(t, err, testimonial.ErrNotFound)
}
