package microfinance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

var accountPattern = regexp.MustCompile(`^MF[0-9]{8}$`)

const minClientIDLength = 3

var minOpeningDeposit = decimal.NewFromInt(5000)
var maxTransactionAmount = decimal.NewFromInt(1000000)

// Withdrawals above this amount are approved but carry an advisory, so field
// agents can plan cash availability at rural branches.
var largeWithdrawalAdvisoryThreshold = decimal.NewFromInt(200000)

// AdvisorChooser names the client advisor cited in large-withdrawal
// advisories. It must be a pure function of the account number so the same
// account is always handled by the same advisor.
type AdvisorChooser func(accountNumber string) string

var advisors = []string{"Mme. Ngo Bikai", "M. Tchoupo", "Mme. Fouda", "M. Abena"}

func defaultAdvisorChooser(accountNumber string) string {
	sum := 0
	for _, c := range accountNumber {
		sum += int(c)
	}
	return advisors[sum%len(advisors)]
}

type Validator struct {
	advisorFor AdvisorChooser
}

func NewValidator() Validator {
	return Validator{advisorFor: defaultAdvisorChooser}
}

// NewValidatorWithAdvisorChooser overrides the advisor assignment.
func NewValidatorWithAdvisorChooser(chooser AdvisorChooser) Validator {
	if chooser == nil {
		chooser = defaultAdvisorChooser
	}
	return Validator{advisorFor: chooser}
}

func (Validator) OperatorName() string {
	return operatorName
}

func (v Validator) ValidateAccountCreation(accountNumber string, clientID string, initialDeposit decimal.Decimal) domain.AccountValidationOutcome {
	accountNumber = strings.TrimSpace(accountNumber)
	clientID = strings.TrimSpace(clientID)

	if !accountPattern.MatchString(accountNumber) {
		return v.reject("account number must be MF followed by 8 digits")
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
		return v.reject("account number must be MF followed by 8 digits")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return v.reject("amount must be greater than zero")
	}
	if amount.GreaterThan(maxTransactionAmount) {
		return v.reject(fmt.Sprintf("amount exceeds the per-transaction ceiling of %s", maxTransactionAmount.StringFixed(2)))
	}

	outcome := domain.AccountValidationOutcome{
		Approved:     true,
		Message:      fmt.Sprintf("%s of %s authorized on account %s", transactionType, amount.StringFixed(2), accountNumber),
		OperatorName: operatorName,
	}

	if transactionType == domain.TransactionWithdrawal && amount.GreaterThan(largeWithdrawalAdvisoryThreshold) {
		outcome.Advisory = fmt.Sprintf("withdrawal above %s: notify advisor %s one day ahead for cash availability",
			largeWithdrawalAdvisoryThreshold.StringFixed(2), v.advisorFor(accountNumber))
	}

	return outcome
}

func (Validator) reject(reason string) domain.AccountValidationOutcome {
	return domain.AccountValidationOutcome{
		Approved:     false,
		Message:      reason,
		OperatorName: operatorName,
	}
}
