package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

// FraudPolicy decides whether a transaction trips the fraud gate. Given the
// same transaction, a policy must always return the same decision.
type FraudPolicy interface {
	Evaluate(spec domain.TransactionSpec) (flagged bool, reason string)
}

// AmountThresholdPolicy flags transactions whose amount strictly exceeds the
// limit configured for their type, falling back to DefaultLimit.
type AmountThresholdPolicy struct {
	Limits       map[domain.TransactionType]decimal.Decimal
	DefaultLimit decimal.Decimal
}

// NewDefaultFraudPolicy returns the stock policy used when no custom limits
// are configured.
func NewDefaultFraudPolicy() AmountThresholdPolicy {
	return AmountThresholdPolicy{
		Limits: map[domain.TransactionType]decimal.Decimal{
			domain.TransactionTransferInternational: decimal.NewFromInt(2000000),
			domain.TransactionWithdrawal:            decimal.NewFromInt(1500000),
		},
		DefaultLimit: decimal.NewFromInt(5000000),
	}
}

func (p AmountThresholdPolicy) Evaluate(spec domain.TransactionSpec) (bool, string) {
	limit, ok := p.Limits[spec.Type]
	if !ok {
		limit = p.DefaultLimit
	}

	if spec.Amount.GreaterThan(limit) {
		return true, fmt.Sprintf("amount %s exceeds the %s fraud limit of %s",
			spec.Amount.StringFixed(2), spec.Type, limit.StringFixed(2))
	}

	return false, ""
}
