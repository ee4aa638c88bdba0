package response

import (
	"topup_store/internal/domain/entities"
	"topup_store/internal/usecase"
)

// DataResponse wraps every successful payload.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func OK(data any) DataResponse {
	return DataResponse{Success: true, Data: data}
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CountResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

type ProductResponse struct {
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

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, ProductResponse{
			SKU:        p.SKU,
			Name:       p.Name,
			Brand:      p.Brand,
			Category:   p.Category,
			PriceModal: p.PriceModal,
			Markup:     p.Markup,
			PriceSell:  p.PriceSell,
			Image:      p.Image,
			IsActive:   p.IsActive,
			IsPromo:    p.IsPromo,
		})
	}
	return out
}

// StorefrontProductResponse hides the supplier cost from customers.
type StorefrontProductResponse struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Category  string `json:"category"`
	PriceSell int64  `json:"price_sell"`
	Image     string `json:"image"`
	IsPromo   bool   `json:"is_promo"`
}

type InitDataResponse struct {
	Success  bool                        `json:"success"`
	Sliders  []string                    `json:"sliders"`
	Banners  map[string]string           `json:"banners"`
	Products []StorefrontProductResponse `json:"products"`
}

func FromInitData(d usecase.InitData) InitDataResponse {
	products := make([]StorefrontProductResponse, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, StorefrontProductResponse{
			SKU:       p.SKU,
			Name:      p.Name,
			Brand:     p.Brand,
			Category:  p.Category,
			PriceSell: p.PriceSell,
			Image:     p.Image,
			IsPromo:   p.IsPromo,
		})
	}
	sliders := d.Sliders
	if sliders == nil {
		sliders = []string{}
	}
	banners := d.Banners
	if banners == nil {
		banners = map[string]string{}
	}
	return InitDataResponse{Success: true, Sliders: sliders, Banners: banners, Products: products}
}

type NicknameResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}
