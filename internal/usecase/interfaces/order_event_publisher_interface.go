package interfaces

import (
	"context"
	"topup_store/internal/domain/entities"
)

// Order lifecycle event types.
const (
	EventOrderCreated = "OrderCreated"
	EventOrderPaid    = "OrderPaid"
	EventOrderExpired = "OrderExpired"
	EventOrderFailed  = "OrderFailed"
)

// IOrderEventPublisher announces order lifecycle changes.
// Publishing is best effort and must not fail the calling operation.
type IOrderEventPublisher interface {
	Publish(ctx context.Context, eventType string, o entities.Order)
}
