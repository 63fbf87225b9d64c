package bank

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

var accountPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{10}$`)

const minClientIDLength = 5

var minOpeningDeposit = decimal.NewFromInt(50000)
var maxTransactionAmount = decimal.NewFromInt(10000000)

type Validator struct{}

func NewValidator() Validator {
	return Validator{}
}

func (Validator) OperatorName() string {
	return operatorName
}

func (v Validator) ValidateAccountCreation(accountNumber string, clientID string, initialDeposit decimal.Decimal) domain.AccountValidationOutcome {
	accountNumber = strings.TrimSpace(accountNumber)
	clientID = strings.TrimSpace(clientID)

	if !accountPattern.MatchString(accountNumber) {
		return v.reject("account number must be 2 uppercase letters followed by 10 digits")
	}
	if len(clientID) < minClientIDLength {
		return v.reject(fmt.Sprintf("client id must be at least %d characters", minClientIDLength))
	}
	if initialDeposit.LessThan(minOpeningDeposit) {
		return v.reject(fmt.Sprintf("initial deposit must be at least %s", minOpeningDeposit.StringFixed(2)))
	}

	return domain.AccountValidationOutcome{
		Approved:     true,
		Message:      fmt.Sprintf("account %s approved with opening deposit of %s", accountNumber, initialDeposit.StringFixed(2)),
		OperatorName: operatorName,
	}
}

func (v Validator) ValidateTransaction(accountNumber string, amount decimal.Decimal, transactionType domain.TransactionType) domain.AccountValidationOutcome {
	accountNumber = strings.TrimSpace(accountNumber)

	if !accountPattern.MatchString(accountNumber) {
		return v.reject("account number must be 2 uppercase letters followed by 10 digits")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return v.reject("amount must be greater than zero")
	}
	if amount.GreaterThan(maxTransactionAmount) {
		return v.reject(fmt.Sprintf("amount exceeds the per-transaction ceiling of %s", maxTransactionAmount.StringFixed(2)))
	}

	return domain.AccountValidationOutcome{
		Approved:     true,
		Message:      fmt.Sprintf("%s of %s authorized on account %s", transactionType, amount.StringFixed(2), accountNumber),
		OperatorName: operatorName,
	}
}

func (Validator) reject(reason string) domain.AccountValidationOutcome {
	return domain.AccountValidationOutcome{
		Approved:     false,
		Message:      reason,
		OperatorName: operatorName,
	}
}
