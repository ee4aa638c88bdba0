package entities

import "time"

// CreateTransactionRequest is what the ledger asks the gateway to open.
type CreateTransactionRequest struct {
	Method        string
	MerchantRef   string
	Amount        int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ItemSKU       string
	ItemName      string
	ReturnURL     string
	ExpiresAt     time.Time
	Signature     string
}

// CreatedTransaction holds the payment artifacts returned by the gateway.
type CreatedTransaction struct {
	Reference   string
	MerchantRef string
	Amount      int64
	Status      string
	QRURL       string
	PayCode     string
	CheckoutURL string
}

// TransactionDetail is the remote view of a transaction used for reconciliation.
type TransactionDetail struct {
	Reference string
	Status    string
}

// SupplierItem is one row of the supplier price list.
type SupplierItem struct {
	SKU      string
	Name     string
	Brand    string
	Category string
	Price    int64
}
