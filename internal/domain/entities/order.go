package entities

import "time"

// OrderStatus mirrors the payment gateway transaction status.
//
// Lifecycle:
//   - every order starts UNPAID
//   - PAID, EXPIRED and FAILED are terminal
//   - transitions are only ever driven by the remote gateway status
type OrderStatus string

const (
	OrderStatusUnpaid  OrderStatus = "UNPAID"
	OrderStatusPaid    OrderStatus = "PAID"
	OrderStatusExpired OrderStatus = "EXPIRED"
	OrderStatusFailed  OrderStatus = "FAILED"
)

// OrderValidity is the payment window shown to the customer.
// It is advisory: the stored status only changes when the gateway reports it.
const OrderValidity = 24 * time.Hour

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusUnpaid:  {OrderStatusPaid: true, OrderStatusExpired: true, OrderStatusFailed: true},
	OrderStatusPaid:    {},
	OrderStatusExpired: {},
	OrderStatusFailed:  {},
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusPaid, OrderStatusExpired, OrderStatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether the ledger may move an order from one status to another.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// Order is a single checkout attempt persisted by the ledger.
//
// Storage model (DynamoDB):
//   - PK: ref_id (assigned by the gateway, immutable)
//
// ProductName is copied from the catalog at creation time so later catalog
// edits never change historical orders.
type Order struct {
	RefID       string      `json:"ref_id"`
	MerchantRef string      `json:"merchant_ref"`
	SKU         string      `json:"sku"`
	Game        string      `json:"game"`
	ProductName string      `json:"product_name"`
	Nickname    string      `json:"nickname"`
	UserID      string      `json:"user_id"`
	Amount      int64       `json:"amount"`
	Method      string      `json:"method"`
	Status      OrderStatus `json:"status"`
	QRURL       string      `json:"qr_url,omitempty"`
	PayCode     string      `json:"pay_code,omitempty"`
	CheckoutURL string      `json:"checkout_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ExpiresAt is the end of the customer-facing payment window.
func (o Order) ExpiresAt() time.Time {
	return o.CreatedAt.Add(OrderValidity)
}
