package bank

import (
	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

// Fee rates are percentages of the transaction amount. Fees round up to the
// nearest integer currency unit so the bank never under-collects.
var feeRates = map[domain.TransactionType]decimal.Decimal{
	domain.TransactionTransferInternal:      decimal.NewFromFloat(0.5),
	domain.TransactionTransferInterOperator: decimal.NewFromFloat(1.0),
	domain.TransactionTransferInternational: decimal.NewFromFloat(1.5),
	domain.TransactionWithdrawal:            decimal.NewFromFloat(0.75),
	domain.TransactionPayment:               decimal.NewFromFloat(0.5),
	domain.TransactionBillPayment:           decimal.NewFromFloat(0.5),
}

var interOperatorMinimumFee = decimal.NewFromInt(500)

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
		// Deposits and unknown types are free of charge.
		return decimal.Zero
	}

	return amount.Mul(rate).Div(decimal.NewFromInt(100)).Ceil()
}

func (r RateCalculator) CalculateInterOperatorFee(amount decimal.Decimal) decimal.Decimal {
	fee := r.CalculateTransactionFee(amount, domain.TransactionTransferInterOperator)
	if fee.LessThan(interOperatorMinimumFee) {
		return interOperatorMinimumFee
	}

	return fee
}

func (r RateCalculator) CalculateWithdrawalCommission(amount decimal.Decimal) decimal.Decimal {
	return r.CalculateTransactionFee(amount, domain.TransactionWithdrawal)
}

// CalculateSavingsInterestRate returns the annual rate as a percentage.
// Larger balances earn a better rate.
func (RateCalculator) CalculateSavingsInterestRate(balance decimal.Decimal) decimal.Decimal {
	switch {
	case balance.LessThan(decimal.NewFromInt(1000000)):
		return decimal.NewFromFloat(2.25)
	case balance.LessThan(decimal.NewFromInt(5000000)):
		return decimal.NewFromFloat(2.75)
	default:
		return decimal.NewFromFloat(3.25)
	}
}
