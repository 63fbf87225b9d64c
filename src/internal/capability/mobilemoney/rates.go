package mobilemoney

import (
	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

var feeRates = map[domain.TransactionType]decimal.Decimal{
	domain.TransactionTransferInternal:      decimal.NewFromFloat(1.0),
	domain.TransactionTransferInterOperator: decimal.NewFromFloat(1.5),
	domain.TransactionTransferInternational: decimal.NewFromFloat(2.5),
	domain.TransactionWithdrawal:            decimal.NewFromFloat(2.0),
	domain.TransactionPayment:               decimal.NewFromFloat(1.0),
	domain.TransactionBillPayment:           decimal.NewFromFloat(1.0),
}

// Transfers at or below the small-amount band pay a flat fee instead of a
// percentage.
var smallAmountBand = decimal.NewFromInt(5000)
var smallAmountFee = decimal.NewFromInt(50)

type RateCalculator struct{}

func NewRateCalculator() RateCalculator {
	return RateCalculator{}
}

func (RateCalculator) OperatorName() string {
	return operatorName
}

func (RateCalculator) CalculateTransactionFee(amount decimal.Decimal, transactionType domain.TransactionType) decimal.Decimal {
	rate, ok := feeRates[transactionType]
	if !ok {
		return decimal.Zero
	}

	if amount.LessThanOrEqual(smallAmountBand) {
		return smallAmountFee
	}

	return amount.Mul(rate).Div(decimal.NewFromInt(100)).Ceil()
}

func (r RateCalculator) CalculateInterOperatorFee(amount decimal.Decimal) decimal.Decimal {
	return r.CalculateTransactionFee(amount, domain.TransactionTransferInterOperator)
}

func (r RateCalculator) CalculateWithdrawalCommission(amount decimal.Decimal) decimal.Decimal {
	return r.CalculateTransactionFee(amount, domain.TransactionWithdrawal)
}

func (RateCalculator) CalculateSavingsInterestRate(balance decimal.Decimal) decimal.Decimal {
	switch {
	case balance.LessThan(decimal.NewFromInt(100000)):
		return decimal.NewFromFloat(1.5)
	case balance.LessThan(decimal.NewFromInt(500000)):
		return decimal.NewFromFloat(2.0)
	default:
		return decimal.NewFromFloat(2.5)
	}
}
