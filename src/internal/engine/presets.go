package engine

import (
	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

// Presets are the named transaction recipes offered to callers that do not
// want to assemble a transaction step by step. They only configure the
// builder; all validation still happens at Build and Execute time.

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func processingCommission() domain.Commission {
	return domain.Commission{
		Label: "processing",
		Kind:  domain.CommissionFlat,
		Value: decimal.NewFromInt(250),
	}
}

func transferCommission() domain.Commission {
	return domain.Commission{
		Label:   "transfer",
		Kind:    domain.CommissionPercentage,
		Value:   decimal.NewFromInt(1),
		Minimum: decimalPtr(decimal.NewFromInt(100)),
		Maximum: decimalPtr(decimal.NewFromInt(25000)),
	}
}

func interOperatorCommission() domain.Commission {
	return domain.Commission{
		Label:   "inter-operator switch",
		Kind:    domain.CommissionPercentage,
		Value:   decimal.NewFromFloat(1.5),
		Minimum: decimalPtr(decimal.NewFromInt(200)),
	}
}

func correspondentCommission() domain.Commission {
	return domain.Commission{
		Label: "correspondent",
		Kind:  domain.CommissionFlat,
		Value: decimal.NewFromInt(5000),
	}
}

// QuickTransfer keeps friction low: a single flat commission and the
// customer notification, nothing else.
func QuickTransfer(from string, to string, amount decimal.Decimal, currency string) *TransactionBuilder {
	return NewTransactionBuilder().
		Type(domain.TransactionTransferInternal).
		From(from).
		To(to).
		Amount(amount).
		Currency(currency).
		WithCommission(processingCommission()).
		WithNotification()
}

// FullTransfer runs the complete control chain.
func FullTransfer(from string, to string, amount decimal.Decimal, currency string) *TransactionBuilder {
	return NewTransactionBuilder().
		Type(domain.TransactionTransferInternal).
		From(from).
		To(to).
		Amount(amount).
		Currency(currency).
		WithVerification().
		WithFraudCheck().
		WithCommissions(transferCommission(), processingCommission()).
		WithLogging().
		WithNotification()
}

func InterOperatorTransfer(from string, fromOperator domain.OperatorType, to string, toOperator domain.OperatorType, amount decimal.Decimal, currency string) *TransactionBuilder {
	return NewTransactionBuilder().
		Type(domain.TransactionTransferInterOperator).
		From(from, fromOperator).
		To(to, toOperator).
		Amount(amount).
		Currency(currency).
		WithVerification().
		WithFraudCheck().
		WithCommission(interOperatorCommission()).
		WithLogging().
		WithNotification()
}

func InternationalTransfer(from string, to string, amount decimal.Decimal, currency string, targetCurrency string, rate decimal.Decimal) *TransactionBuilder {
	return NewTransactionBuilder().
		Type(domain.TransactionTransferInternational).
		From(from).
		To(to).
		Amount(amount).
		Currency(currency).
		WithVerification().
		WithFraudCheck().
		WithCurrencyConversion(targetCurrency, rate).
		WithCommissions(transferCommission(), correspondentCommission()).
		WithLogging().
		WithNotification()
}

func Deposit(account string, amount decimal.Decimal, currency string) *TransactionBuilder {
	return NewTransactionBuilder().
		Type(domain.TransactionDeposit).
		From(account).
		Amount(amount).
		Currency(currency).
		WithVerification().
		WithLogging().
		WithNotification()
}

func Withdrawal(account string, amount decimal.Decimal, currency string) *TransactionBuilder {
	return NewTransactionBuilder().
		Type(domain.TransactionWithdrawal).
		From(account).
		Amount(amount).
		Currency(currency).
		WithVerification().
		WithFraudCheck().
		WithCommission(processingCommission()).
		WithLogging().
		WithNotification()
}

func BillPayment(account string, billerReference string, amount decimal.Decimal, currency string) *TransactionBuilder {
	return NewTransactionBuilder().
		Type(domain.TransactionBillPayment).
		From(account).
		To(billerReference).
		Amount(amount).
		Currency(currency).
		WithVerification().
		WithCommission(processingCommission()).
		WithNotification()
}
