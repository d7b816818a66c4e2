package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/site"
)

func newTestRepo(t *testing.T) site.Repository {
	t.Helper()
	store := filestore.New(t.TempDir())

	require.NoError(t, store.Save("site-config", site.SiteConfig{
		Name:  "Vitrine SARL",
		Phone: "01 23 45 67 89",
		Address: site.Address{
			Street: "12 rue de la Paix",
			City:   "Clichy",
		},
		Stats: site.Stats{YearsExperience: 25},
		Zones: []string{"Clichy"},
	}))
	require.NoError(t, store.Save("homepage", site.Homepage{
		Hero: site.Hero{Title: "Bienvenue", Subtitle: "Votre artisan local"},
	}))
	require.NoError(t, store.Save("media", site.Media{Logo: "/logo.svg"}))

	return NewFileRepository(store)
}

func TestUpdateSiteConfigMergesPartially(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	phone := "09 87 65 43 21"
	city := "Levallois"
	updated, err := repo.UpdateSiteConfig(ctx, site.SiteConfigPatch{
		Phone:   &phone,
		Address: &site.AddressPatch{City: &city},
	})
	require.NoError(t, err)

	// Patched fields changed, everything else survived.
	assert.Equal(t, "09 87 65 43 21", updated.Phone)
	assert.Equal(t, "Levallois", updated.Address.City)
	assert.Equal(t, "Vitrine SARL", updated.Name)
	assert.Equal(t, "12 rue de la Paix", updated.Address.Street)
	assert.Equal(t, 25, updated.Stats.YearsExperience)

	// The merge is durable, not just in the returned value.
	reread, err := repo.GetSiteConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, reread)
}

func TestUpdateSiteConfigZonesReplace(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	zones := []string{"Paris", "Neuilly"}
	updated, err := repo.UpdateSiteConfig(ctx, site.SiteConfigPatch{Zones: &zones})
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris", "Neuilly"}, updated.Zones)
}

func TestUpdateHomepageNestedMerge(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	subtitle := "Depuis 1998"
	updated, err := repo.UpdateHomepage(ctx, site.HomepagePatch{
		Hero: &site.HeroPatch{Subtitle: &subtitle},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bienvenue", updated.Hero.Title)
	assert.Equal(t, "Depuis 1998", updated.Hero.Subtitle)
	assert.NotNil(t, updated.AboutFeatures)
}

func TestUpdateMediaPartnersReplace(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	partners := []site.Partner{{ID: "p1", Name: "Somfy"}}
	updated, err := repo.UpdateMedia(ctx, site.MediaPatch{Partners: &partners})
	require.NoError(t, err)

	assert.Equal(t, "/logo.svg", updated.Logo)
	require.Len(t, updated.Partners, 1)

	empty := []site.Partner{}
	updated, err = repo.UpdateMedia(ctx, site.MediaPatch{Partners: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Partners)
	assert.NotNil(t, updated.Partners)
}

func TestGetSiteConfigMissingFileIsError(t *testing.T) {
	repo := NewFileRepository(filestore.New(t.TempDir()))
	_, err := repo.GetSiteConfig(context.Background())
	assert.Error(t, err)
}
