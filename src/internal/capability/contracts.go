package capability

import (
	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

// AccountValidator applies one operator's account and transaction policy.
type AccountValidator interface {
	OperatorName() string
	ValidateAccountCreation(accountNumber string, clientID string, initialDeposit decimal.Decimal) domain.AccountValidationOutcome
	ValidateTransaction(accountNumber string, amount decimal.Decimal, transactionType domain.TransactionType) domain.AccountValidationOutcome
}

// RateCalculator computes operator-specific fees, commissions and savings
// interest rates. All fee rounding is ceiling, never floor or nearest, so the
// operator never under-collects.
type RateCalculator interface {
	OperatorName() string
	CalculateTransactionFee(amount decimal.Decimal, transactionType domain.TransactionType) decimal.Decimal
	CalculateInterOperatorFee(amount decimal.Decimal) decimal.Decimal
	CalculateWithdrawalCommission(amount decimal.Decimal) decimal.Decimal
	CalculateSavingsInterestRate(balance decimal.Decimal) decimal.Decimal
}

// NotificationModule formats operator-branded messages. Formatting is local;
// there is no channel I/O, so outcomes are always delivered.
type NotificationModule interface {
	OperatorName() string
	Channel() string
	SendTransactionNotification(accountNumber string, amount decimal.Decimal, balance decimal.Decimal) domain.NotificationOutcome
	SendWelcomeNotification(accountNumber string, clientName string) domain.NotificationOutcome
	SendSecurityAlert(accountNumber string, reason string) domain.NotificationOutcome
}

// ExternalSystemAdapter simulates the operator's back-office system.
type ExternalSystemAdapter interface {
	OperatorName() string
	SystemName() string
	CheckConnectivity() bool
	ExecuteExternalTransfer(destinationAccount string, amount decimal.Decimal, reference string) domain.ExternalTransferOutcome
	FetchExternalBalance(accountNumber string) domain.ExternalBalance
	Synchronize(pendingItems int) domain.SyncOutcome
}

// Bundle groups the four capabilities of one operator family. All members are
// constructed together and report the same operator name; the resolver never
// mixes members across families.
type Bundle struct {
	Operator  domain.OperatorType
	Validator AccountValidator
	Rates     RateCalculator
	Notifier  NotificationModule
	External  ExternalSystemAdapter
}
