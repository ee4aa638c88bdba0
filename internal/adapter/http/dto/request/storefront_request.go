package request

import (
	"strings"

	"topup_store/internal/usecase"
)

type CheckNicknameRequest struct {
	Game string `json:"game" binding:"required"`
	ID   string `json:"id" binding:"required"`
	Zone string `json:"zone"`
}

// CreateTransactionRequest is the storefront checkout payload.
// amount is what the customer saw on the product card.
type CreateTransactionRequest struct {
	SKU        string `json:"sku" binding:"required"`
	Amount     int64  `json:"amount" binding:"required"`
	CustomerNo string `json:"customer_no" binding:"required"`
	Method     string `json:"method" binding:"required"`
	Nickname   string `json:"nickname"`
	Game       string `json:"game"`
}

func (r CreateTransactionRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		SKU:        strings.TrimSpace(r.SKU),
		Amount:     r.Amount,
		CustomerNo: strings.TrimSpace(r.CustomerNo),
		Method:     strings.TrimSpace(r.Method),
		Nickname:   strings.TrimSpace(r.Nickname),
		Game:       strings.TrimSpace(r.Game),
	}
}
