package entities

import "time"

// Product is a catalog item keyed by the supplier SKU.
//
// Storage model (DynamoDB):
//   - PK: sku
//
// Pricing:
//   - PriceModal is the supplier cost, Markup is set by the operator.
//   - PriceSell is derived (PriceModal + Markup) and never edited on its own.
type Product struct {
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	Brand      string    `json:"brand"`
	Category   string    `json:"category"`
	PriceModal int64     `json:"price_modal"`
	Markup     int64     `json:"markup"`
	PriceSell  int64     `json:"price_sell"`
	Image      string    `json:"image"`
	IsActive   bool      `json:"is_active"`
	IsPromo    bool      `json:"is_promo"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WithDerivedPrice returns a copy with PriceSell recomputed from PriceModal and Markup.
func (p Product) WithDerivedPrice() Product {
	p.PriceSell = p.PriceModal + p.Markup
	return p
}
