package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

var allowedPresets = []string{
	"QUICK_TRANSFER",
	"FULL_TRANSFER",
	"INTER_OPERATOR_TRANSFER",
	"INTERNATIONAL_TRANSFER",
	"DEPOSIT",
	"WITHDRAWAL",
	"BILL_PAYMENT",
}

type CommissionModel struct {
	Label   string           `json:"label"`
	Kind    string           `json:"kind"`
	Value   decimal.Decimal  `json:"value"`
	Minimum *decimal.Decimal `json:"minimum,omitempty"`
	Maximum *decimal.Decimal `json:"maximum,omitempty"`
}

func (c CommissionModel) Validate() []string {
	var errs []string

	if strings.TrimSpace(c.Label) == "" {
		errs = append(errs, "commission label is required")
	}

	kind := strings.ToUpper(strings.TrimSpace(c.Kind))
	if kind != string(domain.CommissionPercentage) && kind != string(domain.CommissionFlat) {
		errs = append(errs, "commission kind must be PERCENTAGE or FLAT")
	}

	if c.Value.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "commission value must be greater than zero")
	}

	return errs
}

// ExecuteTransactionRequest describes a transaction to run. Either a preset
// name or an explicit type plus step list must be supplied.
type ExecuteTransactionRequest struct {
	Operator            string            `json:"operator"`
	Preset              string            `json:"preset,omitempty"`
	Type                string            `json:"type,omitempty"`
	SourceAccount       string            `json:"sourceAccount"`
	DestinationAccount  string            `json:"destinationAccount,omitempty"`
	DestinationOperator string            `json:"destinationOperator,omitempty"`
	Amount              decimal.Decimal   `json:"amount"`
	Currency            string            `json:"currency"`
	TargetCurrency      string            `json:"targetCurrency,omitempty"`
	ExchangeRate        *decimal.Decimal  `json:"exchangeRate,omitempty"`
	Description         string            `json:"description,omitempty"`
	Steps               []string          `json:"steps,omitempty"`
	Commissions         []CommissionModel `json:"commissions,omitempty"`
}

func (r ExecuteTransactionRequest) Validate() error {
	var errs []string

	operator := strings.ToUpper(strings.TrimSpace(r.Operator))
	if operator == "" {
		errs = append(errs, "operator is required")
	} else if !domain.OperatorType(operator).IsValid() {
		errs = append(errs, "operator must be one of BANK, MOBILE_MONEY, MICROFINANCE")
	}

	preset := strings.ToUpper(strings.TrimSpace(r.Preset))
	transactionType := strings.ToUpper(strings.TrimSpace(r.Type))
	switch {
	case preset == "" && transactionType == "":
		errs = append(errs, "either preset or type is required")
	case preset != "" && transactionType != "":
		errs = append(errs, "preset and type are mutually exclusive")
	case preset != "" && !isAllowedPreset(preset):
		errs = append(errs, "preset is not supported")
	case transactionType != "" && !domain.TransactionType(transactionType).IsValid():
		errs = append(errs, "type is not supported")
	}

	if strings.TrimSpace(r.SourceAccount) == "" {
		errs = append(errs, "sourceAccount is required")
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if len(currency) != 3 {
		errs = append(errs, "currency must be 3 characters")
	}

	for _, step := range r.Steps {
		switch domain.Step(strings.ToUpper(strings.TrimSpace(step))) {
		case domain.StepVerification, domain.StepFraudCheck, domain.StepLogging,
			domain.StepNotification, domain.StepCurrencyConversion:
		default:
			errs = append(errs, "step "+step+" is not supported")
		}
	}

	if hasStepName(r.Steps, domain.StepCurrencyConversion) || preset == "INTERNATIONAL_TRANSFER" {
		if len(strings.ToUpper(strings.TrimSpace(r.TargetCurrency))) != 3 {
			errs = append(errs, "targetCurrency must be 3 characters when currency conversion is requested")
		}
		if r.ExchangeRate == nil || r.ExchangeRate.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, "exchangeRate must be greater than zero when currency conversion is requested")
		}
	}

	if preset == "INTER_OPERATOR_TRANSFER" {
		destinationOperator := strings.ToUpper(strings.TrimSpace(r.DestinationOperator))
		if !domain.OperatorType(destinationOperator).IsValid() {
			errs = append(errs, "destinationOperator is required for inter-operator transfers")
		}
	}

	for _, commission := range r.Commissions {
		errs = append(errs, commission.Validate()...)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func isAllowedPreset(preset string) bool {
	for _, allowed := range allowedPresets {
		if preset == allowed {
			return true
		}
	}
	return false
}

func hasStepName(steps []string, step domain.Step) bool {
	for _, name := range steps {
		if strings.ToUpper(strings.TrimSpace(name)) == string(step) {
			return true
		}
	}
	return false
}

type CommissionLineResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type StepOutcomeResponse struct {
	Step    string `json:"step"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type TransactionResponse struct {
	Reference       string                   `json:"reference"`
	Operator        string                   `json:"operator"`
	Type            string                   `json:"type"`
	Success         bool                     `json:"success"`
	Amount          decimal.Decimal          `json:"amount"`
	FinalAmount     decimal.Decimal          `json:"finalAmount"`
	Currency        string                   `json:"currency"`
	Fee             decimal.Decimal          `json:"fee"`
	CommissionLines []CommissionLineResponse `json:"commissionLines,omitempty"`
	TotalCommission decimal.Decimal          `json:"totalCommission"`
	StepOutcomes    []StepOutcomeResponse    `json:"stepOutcomes"`
	Message         string                   `json:"message"`
	ExecutedAt      string                   `json:"executedAt"`
}
