package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/http/models"
	"github.com/api-sage/multiop-transaction-engine/src/internal/commons"
)

type OperatorService interface {
	ListOperators(ctx context.Context) (commons.Response[[]models.OperatorResponse], error)
	ValidateAccountCreation(ctx context.Context, req models.ValidateAccountRequest) (commons.Response[models.ValidateAccountResponse], error)
	GetSavingsRate(ctx context.Context, operator string, balance decimal.Decimal) (commons.Response[models.SavingsRateResponse], error)
}
