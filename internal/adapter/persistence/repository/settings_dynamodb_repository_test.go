package repository

import (
	"context"
	"testing"

	"topup_store/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDynamoRepository_EmptyTable(t *testing.T) {
	repo := NewSettingsDynamoRepository(newFakeDynamo("id"), "")

	general, err := repo.GetGeneral(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.GeneralSettings{}, general)

	assets, err := repo.GetAssets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, assets.Sliders)
}

func TestSettingsDynamoRepository_RoundTrip(t *testing.T) {
	ddb := newFakeDynamo("id")
	repo := NewSettingsDynamoRepository(ddb, "settings")

	general := entities.GeneralSettings{
		TripayAPIKey:       "api",
		TripayPrivateKey:   "priv",
		TripayMerchantCode: "T0001",
		TripayMode:         "sandbox",
		DigiflazzUsername:  "store",
		DigiflazzAPIKey:    "key",
		AdminPassword:      "secret",
	}
	require.NoError(t, repo.SaveGeneral(context.Background(), general))
	require.NoError(t, repo.SaveAssets(context.Background(), entities.Assets{
		Sliders: []string{"data:image/png;base64,AA=="},
		Banners: map[string]string{"FREE FIRE": "data:image/png;base64,BB=="},
	}))

	assert.Contains(t, ddb.items, "general")
	assert.Contains(t, ddb.items, "assets")

	gotGeneral, err := repo.GetGeneral(context.Background())
	require.NoError(t, err)
	assert.Equal(t, general, gotGeneral)

	gotAssets, err := repo.GetAssets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"data:image/png;base64,AA=="}, gotAssets.Sliders)
	assert.Equal(t, "data:image/png;base64,BB==", gotAssets.Banners["FREE FIRE"])
}

func TestSettingsDynamoRepository_SaveAssetsNilCollections(t *testing.T) {
	repo := NewSettingsDynamoRepository(newFakeDynamo("id"), "settings")
	require.NoError(t, repo.SaveAssets(context.Background(), entities.Assets{}))

	got, err := repo.GetAssets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Sliders)
	assert.Empty(t, got.Banners)
}
