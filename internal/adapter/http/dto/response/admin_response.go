package response

import (
	"topup_store/internal/domain/entities"
	"topup_store/internal/usecase"
)

// GeneralSettingsResponse never carries the admin password back.
type GeneralSettingsResponse struct {
	TripayAPIKey       string `json:"tripay_api_key"`
	TripayPrivateKey   string `json:"tripay_private_key"`
	TripayMerchantCode string `json:"tripay_merchant_code"`
	TripayMode         string `json:"tripay_mode"`
	DigiflazzUsername  string `json:"digiflazz_username"`
	DigiflazzAPIKey    string `json:"digiflazz_api_key"`
	HasAdminPassword   bool   `json:"has_admin_password"`
}

type AssetsResponse struct {
	Sliders []string          `json:"sliders"`
	Banners map[string]string `json:"banners"`
}

type AdminConfigResponse struct {
	Success  bool                    `json:"success"`
	General  GeneralSettingsResponse `json:"general"`
	Assets   AssetsResponse          `json:"assets"`
	Products []ProductResponse       `json:"products"`
}

func FromAdminConfig(cfg usecase.AdminConfig, products []entities.Product) AdminConfigResponse {
	g := cfg.General
	return AdminConfigResponse{
		Success: true,
		General: GeneralSettingsResponse{
			TripayAPIKey:       g.TripayAPIKey,
			TripayPrivateKey:   g.TripayPrivateKey,
			TripayMerchantCode: g.TripayMerchantCode,
			TripayMode:         g.TripayMode,
			DigiflazzUsername:  g.DigiflazzUsername,
			DigiflazzAPIKey:    g.DigiflazzAPIKey,
			HasAdminPassword:   g.AdminPassword != "",
		},
		Assets:   AssetsResponse{Sliders: cfg.Assets.Sliders, Banners: cfg.Assets.Banners},
		Products: FromProducts(products),
	}
}

type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
