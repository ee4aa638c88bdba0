package request

import "topup_store/internal/domain/entities"

type LoginRequest struct {
	Password string `json:"password"`
}

// SaveConfigRequest overwrites settings/general. An empty admin_password keeps the current one.
type SaveConfigRequest struct {
	TripayAPIKey       string `json:"tripay_api_key"`
	TripayPrivateKey   string `json:"tripay_private_key"`
	TripayMerchantCode string `json:"tripay_merchant_code"`
	TripayMode         string `json:"tripay_mode"`
	DigiflazzUsername  string `json:"digiflazz_username"`
	DigiflazzAPIKey    string `json:"digiflazz_api_key"`
	AdminPassword      string `json:"admin_password"`
}

func (r SaveConfigRequest) ToEntity() entities.GeneralSettings {
	return entities.GeneralSettings{
		TripayAPIKey:       r.TripayAPIKey,
		TripayPrivateKey:   r.TripayPrivateKey,
		TripayMerchantCode: r.TripayMerchantCode,
		TripayMode:         r.TripayMode,
		DigiflazzUsername:  r.DigiflazzUsername,
		DigiflazzAPIKey:    r.DigiflazzAPIKey,
		AdminPassword:      r.AdminPassword,
	}
}

// ProductRequest is one row of the bulk save. price_sell is accepted but ignored.
type ProductRequest struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	Category   string `json:"category"`
	PriceModal int64  `json:"price_modal"`
	Markup     int64  `json:"markup"`
	PriceSell  int64  `json:"price_sell"`
	Image      string `json:"image"`
	IsActive   bool   `json:"is_active"`
	IsPromo    bool   `json:"is_promo"`
}

func ToProducts(rows []ProductRequest) []entities.Product {
	out := make([]entities.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.Product{
			SKU:        r.SKU,
			Name:       r.Name,
			Brand:      r.Brand,
			Category:   r.Category,
			PriceModal: r.PriceModal,
			Markup:     r.Markup,
			Image:      r.Image,
			IsActive:   r.IsActive,
			IsPromo:    r.IsPromo,
		}.WithDerivedPrice())
	}
	return out
}

type SaveAssetsRequest struct {
	Sliders []string          `json:"sliders"`
	Banners map[string]string `json:"banners"`
}

func (r SaveAssetsRequest) ToEntity() entities.Assets {
	return entities.Assets{Sliders: r.Sliders, Banners: r.Banners}
}
