package interfaces

import (
	"context"
	"topup_store/internal/domain/entities"
)

// ISupplierClient pulls the wholesale price list (Digiflazz).
type ISupplierClient interface {
	PriceList(ctx context.Context, creds entities.SupplierCredentials) ([]entities.SupplierItem, error)
}
