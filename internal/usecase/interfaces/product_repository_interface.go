package interfaces

import (
	"context"
	"topup_store/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for the catalog.
//
// SaveAll is a batch overwrite keyed by SKU. It is not transactional: a failure
// mid-way can leave some products written.
type IProductRepository interface {
	GetBySKU(ctx context.Context, sku string) (entities.Product, error)
	ListAll(ctx context.Context) ([]entities.Product, error)
	SaveAll(ctx context.Context, products []entities.Product) error
	DeleteAll(ctx context.Context) (int, error)
}
