package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/domains/site"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestSiteConfigFromRowNormalizesNulls(t *testing.T) {
	// A completely NULL row must come out as empty strings, zero numbers
	// and an empty zones list, never nil or "null".
	cfg := SiteConfigFromRow(SiteConfigRow{})

	assert.Equal(t, "", cfg.Name)
	assert.Equal(t, "", cfg.Address.Street)
	assert.Equal(t, 0, cfg.Stats.YearsExperience)
	assert.NotNil(t, cfg.Zones)
	assert.Empty(t, cfg.Zones)
}

func TestSiteConfigFromRowNesting(t *testing.T) {
	cfg := SiteConfigFromRow(SiteConfigRow{
		Name:          strPtr("Vitrine SARL"),
		AddressStreet: strPtr("12 rue de la Paix"),
		AddressCity:   strPtr("Clichy"),
		StatsYears:    intPtr(25),
		Zones:         []string{"Clichy", "Levallois"},
	})

	assert.Equal(t, "Vitrine SARL", cfg.Name)
	assert.Equal(t, "12 rue de la Paix", cfg.Address.Street)
	assert.Equal(t, "Clichy", cfg.Address.City)
	assert.Equal(t, 25, cfg.Stats.YearsExperience)
	assert.Equal(t, []string{"Clichy", "Levallois"}, cfg.Zones)
}

func TestSiteConfigRowPatchFlattening(t *testing.T) {
	street := "3 avenue Foch"
	years := 30
	zones := []string{"Paris 16e"}

	cols := SiteConfigRowPatch(site.SiteConfigPatch{
		Name:    strPtr("Nouvelle Enseigne"),
		Address: &site.AddressPatch{Street: &street},
		Stats:   &site.StatsPatch{YearsExperience: &years},
		Zones:   &zones,
	})

	// Only the present fields appear, under their flattened column names.
	assert.Equal(t, map[string]interface{}{
		"name":                   "Nouvelle Enseigne",
		"address_street":         "3 avenue Foch",
		"stats_years_experience": 30,
		"zones":                  []string{"Paris 16e"},
	}, cols)
}

func TestSiteConfigRowPatchAbsentGroupTouchesNothing(t *testing.T) {
	cols := SiteConfigRowPatch(site.SiteConfigPatch{})
	assert.Empty(t, cols)

	// A present but empty nested group also emits no columns.
	cols = SiteConfigRowPatch(site.SiteConfigPatch{Address: &site.AddressPatch{}})
	assert.Empty(t, cols)
}

func TestHomepageRowRoundTrip(t *testing.T) {
	features := []site.AboutFeature{{Icon: "bolt", Title: "Réactivité", Description: "Intervention sous 24h"}}

	cols, err := HomepageRowPatch(site.HomepagePatch{
		Hero:          &site.HeroPatch{Title: strPtr("Votre électricien local")},
		Services:      &site.SectionPatch{Title: strPtr("Nos services")},
		AboutFeatures: &features,
	})
	require.NoError(t, err)
	assert.Contains(t, cols, "hero_title")
	assert.Contains(t, cols, "services_title")
	assert.Contains(t, cols, "about_features")

	hp, err := HomepageFromRow(HomepageRow{
		HeroTitle:     strPtr("Votre électricien local"),
		AboutFeatures: cols["about_features"].([]byte),
	})
	require.NoError(t, err)
	assert.Equal(t, "Votre électricien local", hp.Hero.Title)
	require.Len(t, hp.AboutFeatures, 1)
	assert.Equal(t, "Réactivité", hp.AboutFeatures[0].Title)
	assert.Equal(t, "", hp.Brands.Title)
}

func TestMediaRowRoundTrip(t *testing.T) {
	partners := []site.Partner{{ID: "p1", Name: "Somfy", Logo: "/logos/somfy.png"}}

	cols, err := MediaRowPatch(site.MediaPatch{
		Logo:     strPtr("/logo.svg"),
		Partners: &partners,
	})
	require.NoError(t, err)

	m, err := MediaFromRow(MediaRow{
		Logo:     strPtr("/logo.svg"),
		Partners: cols["partners"].([]byte),
	})
	require.NoError(t, err)
	assert.Equal(t, "/logo.svg", m.Logo)
	require.Len(t, m.Partners, 1)
	assert.Equal(t, "Somfy", m.Partners[0].Name)
	assert.Equal(t, "", m.OGImage)
}
