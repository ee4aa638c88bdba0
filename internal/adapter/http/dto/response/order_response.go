package response

import (
	"time"

	"topup_store/internal/domain/entities"
)

type OrderResponse struct {
	RefID       string    `json:"ref_id"`
	MerchantRef string    `json:"merchant_ref"`
	SKU         string    `json:"sku"`
	Game        string    `json:"game"`
	ProductName string    `json:"product_name"`
	Nickname    string    `json:"nickname"`
	UserID      string    `json:"user_id"`
	Amount      int64     `json:"amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	QRURL       string    `json:"qr_url,omitempty"`
	PayCode     string    `json:"pay_code,omitempty"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ExpiredAt   time.Time `json:"expired_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		RefID:       o.RefID,
		MerchantRef: o.MerchantRef,
		SKU:         o.SKU,
		Game:        o.Game,
		ProductName: o.ProductName,
		Nickname:    o.Nickname,
		UserID:      o.UserID,
		Amount:      o.Amount,
		Method:      o.Method,
		Status:      string(o.Status),
		QRURL:       o.QRURL,
		PayCode:     o.PayCode,
		CheckoutURL: o.CheckoutURL,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		ExpiredAt:   o.ExpiresAt(),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// CreatedTransactionResponse is the payment instruction shown right after checkout.
type CreatedTransactionResponse struct {
	RefID       string    `json:"ref_id"`
	MerchantRef string    `json:"merchant_ref"`
	QRURL       string    `json:"qr_url,omitempty"`
	PayCode     string    `json:"pay_code,omitempty"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	ExpiredAt   time.Time `json:"expired_at"`
}

func FromCreatedOrder(o entities.Order) CreatedTransactionResponse {
	return CreatedTransactionResponse{
		RefID:       o.RefID,
		MerchantRef: o.MerchantRef,
		QRURL:       o.QRURL,
		PayCode:     o.PayCode,
		CheckoutURL: o.CheckoutURL,
		Amount:      o.Amount,
		Status:      string(o.Status),
		ExpiredAt:   o.ExpiresAt(),
	}
}
