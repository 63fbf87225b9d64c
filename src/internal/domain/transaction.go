package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionSpec is the immutable description of a transaction produced by
// the builder. Steps holds the enabled optional phases; Commissions preserves
// insertion order.
type TransactionSpec struct {
	Type                TransactionType  `json:"type"`
	SourceAccount       string           `json:"sourceAccount"`
	SourceOperator      OperatorType     `json:"sourceOperator,omitempty"`
	DestinationAccount  string           `json:"destinationAccount,omitempty"`
	DestinationOperator OperatorType     `json:"destinationOperator,omitempty"`
	Amount              decimal.Decimal  `json:"amount"`
	Currency            string           `json:"currency"`
	TargetCurrency      string           `json:"targetCurrency,omitempty"`
	ExchangeRate        *decimal.Decimal `json:"exchangeRate,omitempty"`
	Reference           string           `json:"reference,omitempty"`
	Description         string           `json:"description,omitempty"`
	Commissions         []Commission     `json:"commissions,omitempty"`
	Steps               []Step           `json:"steps,omitempty"`
}

// HasStep reports whether the given optional step was enabled at assembly time.
func (s TransactionSpec) HasStep(step Step) bool {
	for _, enabled := range s.Steps {
		if enabled == step {
			return true
		}
	}
	return false
}

type StepStatus string

const (
	StepStatusPassed  StepStatus = "PASSED"
	StepStatusFailed  StepStatus = "FAILED"
	StepStatusSkipped StepStatus = "SKIPPED"
)

// StepOutcome records the result of one execution phase.
type StepOutcome struct {
	Step    Step       `json:"step"`
	Status  StepStatus `json:"status"`
	Message string     `json:"message,omitempty"`
}

// CommissionLine reports one applied commission. Lines appear in the result
// in the order the commissions were attached at assembly time.
type CommissionLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// TransactionResult is produced once per execution. Success is false iff a
// hard-failure step (verification, fraud check, currency conversion) failed.
type TransactionResult struct {
	Reference       string           `json:"reference"`
	Success         bool             `json:"success"`
	FinalAmount     decimal.Decimal  `json:"finalAmount"`
	Fee             decimal.Decimal  `json:"fee"`
	CommissionLines []CommissionLine `json:"commissionLines,omitempty"`
	TotalCommission decimal.Decimal  `json:"totalCommission"`
	StepOutcomes    []StepOutcome    `json:"stepOutcomes"`
	Message         string           `json:"message"`
	ExecutedAt      time.Time        `json:"executedAt"`
}

// TransactionRecord is one entry of the append-only transaction history.
type TransactionRecord struct {
	Reference string            `json:"reference"`
	Operator  OperatorType      `json:"operator"`
	Spec      TransactionSpec   `json:"spec"`
	Result    TransactionResult `json:"result"`
	CreatedAt time.Time         `json:"createdAt"`
}
