package microfinance

import (
	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

// Transactions at or below the waiver threshold are free of charge
// (social-mission waiver).
var feeWaiverThreshold = decimal.NewFromInt(10000)

var feeRates = map[domain.TransactionType]decimal.Decimal{
	domain.TransactionTransferInternal:      decimal.NewFromFloat(0.8),
	domain.TransactionTransferInterOperator: decimal.NewFromFloat(1.2),
	domain.TransactionTransferInternational: decimal.NewFromFloat(2.0),
	domain.TransactionWithdrawal:            decimal.NewFromFloat(1.0),
	domain.TransactionPayment:               decimal.NewFromFloat(0.8),
	domain.TransactionBillPayment:           decimal.NewFromFloat(0.8),
}

type RateCalculator struct{}

func NewRateCalculator() RateCalculator {
	return RateCalculator{}
}

func (RateCalculator) OperatorName() string {
	return operatorName
}

func (RateCalculator) CalculateTransactionFee(amount decimal.Decimal, transactionType domain.TransactionType) decimal.Decimal {
	if amount.LessThanOrEqual(feeWaiverThreshold) {
		return decimal.Zero
	}

	rate, ok := feeRates[transactionType]
	if !ok {
		return decimal.Zero
	}

	return amount.Mul(rate).Div(decimal.NewFromInt(100)).Ceil()
}

func (r RateCalculator) CalculateInterOperatorFee(amount decimal.Decimal) decimal.Decimal {
	return r.CalculateTransactionFee(amount, domain.TransactionTransferInterOperator)
}

func (r RateCalculator) CalculateWithdrawalCommission(amount decimal.Decimal) decimal.Decimal {
	return r.CalculateTransactionFee(amount, domain.TransactionWithdrawal)
}

// CalculateSavingsInterestRate is intentionally degressive: smaller balances
// earn a higher rate, the opposite slope of classic banking tiers. This is a
// social-equity policy of the institution and must not be "corrected".
func (RateCalculator) CalculateSavingsInterestRate(balance decimal.Decimal) decimal.Decimal {
	switch {
	case balance.LessThanOrEqual(decimal.NewFromInt(50000)):
		return decimal.NewFromFloat(4.5)
	case balance.LessThanOrEqual(decimal.NewFromInt(300000)):
		return decimal.NewFromFloat(3.5)
	case balance.LessThanOrEqual(decimal.NewFromInt(600000)):
		return decimal.NewFromFloat(2.75)
	default:
		return decimal.NewFromFloat(2.0)
	}
}
