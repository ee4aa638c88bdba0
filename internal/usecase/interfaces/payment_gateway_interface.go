package interfaces

import (
	"context"
	"encoding/json"
	"topup_store/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Tripay).
//
// Credentials are passed per call because the operator can change them at runtime.
// None of the calls retry.
type IPaymentGateway interface {
	ListChannels(ctx context.Context, creds entities.GatewayCredentials) (json.RawMessage, error)
	CreateTransaction(ctx context.Context, creds entities.GatewayCredentials, req entities.CreateTransactionRequest) (entities.CreatedTransaction, error)
	GetDetail(ctx context.Context, creds entities.GatewayCredentials, reference string) (entities.TransactionDetail, error)
}
