package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

// stepOrder is the canonical execution order. Build emits enabled steps in
// this order regardless of the order the With* calls were made.
var stepOrder = []domain.Step{
	domain.StepVerification,
	domain.StepFraudCheck,
	domain.StepCurrencyConversion,
	domain.StepLogging,
	domain.StepNotification,
}

// TransactionBuilder accumulates a transaction description. Every setter
// returns the same builder so calls can be chained; step flags are a set, so
// enabling a step twice is the same as enabling it once.
type TransactionBuilder struct {
	transactionType     domain.TransactionType
	typeSet             bool
	sourceAccount       string
	sourceOperator      domain.OperatorType
	destinationAccount  string
	destinationOperator domain.OperatorType
	amount              decimal.Decimal
	amountSet           bool
	currency            string
	targetCurrency      string
	exchangeRate        *decimal.Decimal
	reference           string
	description         string
	commissions         []domain.Commission
	steps               map[domain.Step]struct{}
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{steps: make(map[domain.Step]struct{})}
}

func (b *TransactionBuilder) Type(transactionType domain.TransactionType) *TransactionBuilder {
	b.transactionType = transactionType
	b.typeSet = true
	return b
}

func (b *TransactionBuilder) From(account string, operator ...domain.OperatorType) *TransactionBuilder {
	b.sourceAccount = strings.TrimSpace(account)
	if len(operator) > 0 {
		b.sourceOperator = operator[0]
	}
	return b
}

func (b *TransactionBuilder) To(account string, operator ...domain.OperatorType) *TransactionBuilder {
	b.destinationAccount = strings.TrimSpace(account)
	if len(operator) > 0 {
		b.destinationOperator = operator[0]
	}
	return b
}

func (b *TransactionBuilder) Amount(amount decimal.Decimal) *TransactionBuilder {
	b.amount = amount
	b.amountSet = true
	return b
}

func (b *TransactionBuilder) Currency(currency string) *TransactionBuilder {
	b.currency = strings.ToUpper(strings.TrimSpace(currency))
	return b
}

func (b *TransactionBuilder) Reference(reference string) *TransactionBuilder {
	b.reference = strings.TrimSpace(reference)
	return b
}

func (b *TransactionBuilder) Description(description string) *TransactionBuilder {
	b.description = strings.TrimSpace(description)
	return b
}

func (b *TransactionBuilder) WithVerification() *TransactionBuilder {
	b.steps[domain.StepVerification] = struct{}{}
	return b
}

func (b *TransactionBuilder) WithFraudCheck() *TransactionBuilder {
	b.steps[domain.StepFraudCheck] = struct{}{}
	return b
}

func (b *TransactionBuilder) WithLogging() *TransactionBuilder {
	b.steps[domain.StepLogging] = struct{}{}
	return b
}

func (b *TransactionBuilder) WithNotification() *TransactionBuilder {
	b.steps[domain.StepNotification] = struct{}{}
	return b
}

func (b *TransactionBuilder) WithCurrencyConversion(targetCurrency string, rate decimal.Decimal) *TransactionBuilder {
	b.steps[domain.StepCurrencyConversion] = struct{}{}
	b.targetCurrency = strings.ToUpper(strings.TrimSpace(targetCurrency))
	b.exchangeRate = &rate
	return b
}

func (b *TransactionBuilder) WithCommission(commission domain.Commission) *TransactionBuilder {
	b.commissions = append(b.commissions, commission)
	return b
}

func (b *TransactionBuilder) WithCommissions(commissions ...domain.Commission) *TransactionBuilder {
	b.commissions = append(b.commissions, commissions...)
	return b
}

// Build finalizes the accumulated state into an immutable spec. The builder
// stays usable afterwards; building twice with the same inputs yields
// structurally equal specs.
func (b *TransactionBuilder) Build() (domain.TransactionSpec, error) {
	if !b.typeSet {
		return domain.TransactionSpec{}, fmt.Errorf("%w: transaction type is required", domain.ErrIncompleteSpec)
	}
	if !b.transactionType.IsValid() {
		return domain.TransactionSpec{}, fmt.Errorf("%w: unknown transaction type %q", domain.ErrIncompleteSpec, b.transactionType)
	}
	if !b.amountSet {
		return domain.TransactionSpec{}, fmt.Errorf("%w: amount is required", domain.ErrIncompleteSpec)
	}
	if b.amount.LessThanOrEqual(decimal.Zero) {
		return domain.TransactionSpec{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrIncompleteSpec)
	}

	spec := domain.TransactionSpec{
		Type:                b.transactionType,
		SourceAccount:       b.sourceAccount,
		SourceOperator:      b.sourceOperator,
		DestinationAccount:  b.destinationAccount,
		DestinationOperator: b.destinationOperator,
		Amount:              b.amount,
		Currency:            b.currency,
		TargetCurrency:      b.targetCurrency,
		Reference:           b.reference,
		Description:         b.description,
	}

	if b.exchangeRate != nil {
		rate := *b.exchangeRate
		spec.ExchangeRate = &rate
	}

	if len(b.commissions) > 0 {
		spec.Commissions = make([]domain.Commission, len(b.commissions))
		copy(spec.Commissions, b.commissions)
	}

	for _, step := range stepOrder {
		if _, enabled := b.steps[step]; enabled {
			spec.Steps = append(spec.Steps, step)
		}
	}

	return spec, nil
}
