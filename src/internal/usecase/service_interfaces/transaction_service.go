package service_interfaces

import (
	"context"

	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/http/models"
	"github.com/api-sage/multiop-transaction-engine/src/internal/commons"
)

type TransactionService interface {
	ExecuteTransaction(ctx context.Context, req models.ExecuteTransactionRequest) (commons.Response[models.TransactionResponse], error)
	ListTransactions(ctx context.Context) (commons.Response[[]models.TransactionResponse], error)
	GetTransaction(ctx context.Context, reference string) (commons.Response[models.TransactionResponse], error)
}
