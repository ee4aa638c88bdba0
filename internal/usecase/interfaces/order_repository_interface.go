package interfaces

import (
	"context"
	"topup_store/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for orders.
//
// UpdateStatus only applies when the stored status still equals `from`.
// When the condition fails (or the order is gone) it returns a zero Order and no error.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByRefID(ctx context.Context, refID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, refID string, from, to entities.OrderStatus) (entities.Order, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Order, error)
}
