package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"topup_store/internal/domain/entities"
	mock_interfaces "topup_store/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// 1x1 transparent PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func mustHash(pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

func TestSettingsUseCase_Authenticate(t *testing.T) {
	cases := []struct {
		name      string
		stored    string
		bootstrap string
		password  string
		want      error
	}{
		{name: "empty password", stored: "secret", password: "", want: ErrPasswordRequired},
		{name: "stored password matches", stored: "secret", password: "secret"},
		{name: "stored password mismatch", stored: "secret", password: "nope", want: ErrInvalidPassword},
		{name: "bootstrap used when none stored", bootstrap: "boot", password: "boot"},
		{name: "stored wins over bootstrap", stored: "secret", bootstrap: "boot", password: "boot", want: ErrInvalidPassword},
		{name: "no password anywhere", password: "anything", want: ErrInvalidPassword},
		{name: "hashed password matches", stored: mustHash("secret"), password: "secret"},
		{name: "hashed password mismatch", stored: mustHash("secret"), password: "Secret", want: ErrInvalidPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockISettingsRepository(ctrl)
			if tc.password != "" {
				repo.EXPECT().GetGeneral(gomock.Any()).Return(entities.GeneralSettings{AdminPassword: tc.stored}, nil)
			}
			uc := NewSettingsUseCase(repo, SettingsOptions{BootstrapPassword: tc.bootstrap})

			err := uc.Authenticate(context.Background(), tc.password)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSettingsUseCase_SaveGeneral(t *testing.T) {
	t.Run("keeps stored password when empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		repo.EXPECT().GetGeneral(gomock.Any()).Return(entities.GeneralSettings{AdminPassword: "secret"}, nil)
		repo.EXPECT().SaveGeneral(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.GeneralSettings) error {
			assert.Equal(t, "secret", s.AdminPassword)
			assert.Equal(t, entities.GatewayModeSandbox, s.TripayMode)
			assert.Equal(t, "T0001", s.TripayMerchantCode)
			return nil
		})
		uc := NewSettingsUseCase(repo, SettingsOptions{})

		err := uc.SaveGeneral(context.Background(), entities.GeneralSettings{TripayMerchantCode: " T0001 "})
		require.NoError(t, err)
	})

	t.Run("production mode accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		repo.EXPECT().SaveGeneral(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.GeneralSettings) error {
			assert.Equal(t, entities.GatewayModeProduction, s.TripayMode)
			assert.NotEqual(t, "new", s.AdminPassword)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(s.AdminPassword), []byte("new")))
			return nil
		})
		uc := NewSettingsUseCase(repo, SettingsOptions{})

		err := uc.SaveGeneral(context.Background(), entities.GeneralSettings{TripayMode: "Production", AdminPassword: "new"})
		require.NoError(t, err)
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo, SettingsOptions{})

		err := uc.SaveGeneral(context.Background(), entities.GeneralSettings{TripayMode: "live"})
		assert.ErrorIs(t, err, ErrInvalidGatewayMode)
	})
}

func TestSettingsUseCase_SaveAssets_DropsBlankEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	repo.EXPECT().SaveAssets(gomock.Any(), entities.Assets{
		Sliders: []string{"data:image/png;base64,AA=="},
		Banners: map[string]string{"MOBILE LEGENDS": "data:image/png;base64,BB=="},
	}).Return(nil)
	uc := NewSettingsUseCase(repo, SettingsOptions{})

	err := uc.SaveAssets(context.Background(), entities.Assets{
		Sliders: []string{"data:image/png;base64,AA==", "  "},
		Banners: map[string]string{"MOBILE LEGENDS": "data:image/png;base64,BB==", "FREE FIRE": ""},
	})
	require.NoError(t, err)
}

func TestSettingsUseCase_GetConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	repo.EXPECT().GetGeneral(gomock.Any()).Return(testSettings, nil)
	repo.EXPECT().GetAssets(gomock.Any()).Return(entities.Assets{}, nil)
	uc := NewSettingsUseCase(repo, SettingsOptions{})

	cfg, err := uc.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testSettings, cfg.General)
	assert.NotNil(t, cfg.Assets.Banners)
	assert.Empty(t, cfg.Assets.Sliders)
}

func TestSettingsUseCase_GetConfig_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	repo.EXPECT().GetGeneral(gomock.Any()).Return(entities.GeneralSettings{}, errors.New("dynamo down"))
	uc := NewSettingsUseCase(repo, SettingsOptions{})

	_, err := uc.GetConfig(context.Background())
	assert.Error(t, err)
}

func TestSettingsUseCase_EncodeImage(t *testing.T) {
	uc := NewSettingsUseCase(nil, SettingsOptions{UploadMaxBytes: 1024})

	t.Run("png", func(t *testing.T) {
		uri, err := uc.EncodeImage(context.Background(), bytes.NewReader(pngPixel))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,iVBORw0KGgo"), uri)
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := uc.EncodeImage(context.Background(), strings.NewReader("just some text"))
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := uc.EncodeImage(context.Background(), strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("too large", func(t *testing.T) {
		big := append(append([]byte{}, pngPixel...), bytes.Repeat([]byte{0}, 2048)...)
		_, err := uc.EncodeImage(context.Background(), bytes.NewReader(big))
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})
}
