package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/capability"
	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
	"github.com/api-sage/multiop-transaction-engine/src/internal/logger"
)

// ReferenceGenerator produces transaction references. It is injected so tests
// can pin the generated output.
type ReferenceGenerator interface {
	NewReference() string
}

type UUIDReferenceGenerator struct{}

func (UUIDReferenceGenerator) NewReference() string {
	return fmt.Sprintf("TXN-%s", uuid.NewString())
}

// Executor runs assembled transactions against a resolved capability bundle.
// It holds no per-transaction state, so one executor serves concurrent calls.
type Executor struct {
	fraudPolicy FraudPolicy
	references  ReferenceGenerator
	clock       func() time.Time
}

func NewExecutor(fraudPolicy FraudPolicy, references ReferenceGenerator) *Executor {
	if fraudPolicy == nil {
		fraudPolicy = NewDefaultFraudPolicy()
	}
	if references == nil {
		references = UUIDReferenceGenerator{}
	}

	return &Executor{
		fraudPolicy: fraudPolicy,
		references:  references,
		clock:       func() time.Time { return time.Now().UTC() },
	}
}

// Execute runs the enabled steps in their fixed order, short-circuiting on the
// first hard failure. Policy failures produce a failed result, not an error;
// the error return is reserved for malformed specs that bypassed the builder.
func (e *Executor) Execute(ctx context.Context, spec domain.TransactionSpec, bundle capability.Bundle) (domain.TransactionResult, error) {
	_ = ctx
	if !spec.Type.IsValid() {
		return domain.TransactionResult{}, fmt.Errorf("%w: unknown transaction type %q", domain.ErrIncompleteSpec, spec.Type)
	}
	if spec.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.TransactionResult{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrIncompleteSpec)
	}

	reference := spec.Reference
	if reference == "" {
		reference = e.references.NewReference()
	}

	result := domain.TransactionResult{
		Reference:   reference,
		FinalAmount: spec.Amount,
		ExecutedAt:  e.clock(),
	}

	if spec.HasStep(domain.StepVerification) {
		outcome := bundle.Validator.ValidateTransaction(spec.SourceAccount, spec.Amount, spec.Type)
		if !outcome.Approved {
			result.StepOutcomes = append(result.StepOutcomes, domain.StepOutcome{
				Step:    domain.StepVerification,
				Status:  domain.StepStatusFailed,
				Message: outcome.Message,
			})
			return e.abort(result, spec, domain.StepVerification, fmt.Sprintf("verification failed: %s", outcome.Message)), nil
		}

		message := outcome.Message
		if outcome.Advisory != "" {
			message = fmt.Sprintf("%s (advisory: %s)", outcome.Message, outcome.Advisory)
			logger.Warn("transaction executor verification advisory", logger.Fields{
				"reference": reference,
				"advisory":  outcome.Advisory,
			})
		}
		result.StepOutcomes = append(result.StepOutcomes, domain.StepOutcome{
			Step:    domain.StepVerification,
			Status:  domain.StepStatusPassed,
			Message: message,
		})
	}

	if spec.HasStep(domain.StepFraudCheck) {
		flagged, reason := e.fraudPolicy.Evaluate(spec)
		if flagged {
			result.StepOutcomes = append(result.StepOutcomes, domain.StepOutcome{
				Step:    domain.StepFraudCheck,
				Status:  domain.StepStatusFailed,
				Message: reason,
			})
			return e.abort(result, spec, domain.StepFraudCheck, fmt.Sprintf("fraud check failed: %s", reason)), nil
		}
		result.StepOutcomes = append(result.StepOutcomes, domain.StepOutcome{
			Step:   domain.StepFraudCheck,
			Status: domain.StepStatusPassed,
		})
	}

	if spec.HasStep(domain.StepCurrencyConversion) {
		if spec.ExchangeRate == nil || spec.ExchangeRate.LessThanOrEqual(decimal.Zero) {
			message := "exchange rate must be greater than zero"
			result.StepOutcomes = append(result.StepOutcomes, domain.StepOutcome{
				Step:    domain.StepCurrencyConversion,
				Status:  domain.StepStatusFailed,
				Message: message,
			})
			return e.abort(result, spec, domain.StepCurrencyConversion, fmt.Sprintf("currency conversion failed: %s", message)), nil
		}

		result.FinalAmount = spec.Amount.Mul(*spec.ExchangeRate)
		result.StepOutcomes = append(result.StepOutcomes, domain.StepOutcome{
			Step:   domain.StepCurrencyConversion,
			Status: domain.StepStatusPassed,
			Message: fmt.Sprintf("converted %s %s to %s %s at rate %s",
				spec.Amount.StringFixed(2), spec.Currency, result.FinalAmount.StringFixed(2), spec.TargetCurrency, spec.ExchangeRate.String()),
		})
	}

	// Fee and commission application always runs, independent of step flags.
	result.Fee = bundle.Rates.CalculateTransactionFee(result.FinalAmount, spec.Type)
	result.TotalCommission = decimal.Zero
	for _, commission := range spec.Commissions {
		amount := commission.AmountOn(result.FinalAmount)
		result.CommissionLines = append(result.CommissionLines, domain.CommissionLine{
			Label:  commission.Label,
			Amount: amount,
		})
		result.TotalCommission = result.TotalCommission.Add(amount)
	}

	if spec.HasStep(domain.StepLogging) {
		logger.Info("transaction executor audit record", logger.Fields{
			"reference":       reference,
			"operator":        bundle.Operator,
			"type":            spec.Type,
			"sourceAccount":   spec.SourceAccount,
			"amount":          spec.Amount.String(),
			"finalAmount":     result.FinalAmount.String(),
			"fee":             result.Fee.String(),
			"totalCommission": result.TotalCommission.String(),
		})
		result.StepOutcomes = append(result.StepOutcomes, domain.StepOutcome{
			Step:   domain.StepLogging,
			Status: domain.StepStatusPassed,
		})
	}

	if spec.HasStep(domain.StepNotification) {
		balance := bundle.External.FetchExternalBalance(spec.SourceAccount).Balance.
			Sub(result.FinalAmount).Sub(result.Fee).Sub(result.TotalCommission)
		outcome := bundle.Notifier.SendTransactionNotification(spec.SourceAccount, result.FinalAmount, balance)
		status := domain.StepStatusPassed
		if !outcome.Delivered {
			// Notification is non-critical: record the failure, keep success.
			status = domain.StepStatusFailed
		}
		result.StepOutcomes = append(result.StepOutcomes, domain.StepOutcome{
			Step:    domain.StepNotification,
			Status:  status,
			Message: outcome.FormattedMessage,
		})
	}

	result.Success = true
	result.Message = fmt.Sprintf("%s of %s completed successfully", spec.Type, result.FinalAmount.StringFixed(2))

	return result, nil
}

// abort closes out a result after a hard-failure step: remaining enabled
// steps are marked skipped and success stays false.
func (e *Executor) abort(result domain.TransactionResult, spec domain.TransactionSpec, failedAt domain.Step, message string) domain.TransactionResult {
	passedFailure := false
	for _, step := range stepOrder {
		if step == failedAt {
			passedFailure = true
			continue
		}
		if passedFailure && spec.HasStep(step) {
			result.StepOutcomes = append(result.StepOutcomes, domain.StepOutcome{
				Step:   step,
				Status: domain.StepStatusSkipped,
			})
		}
	}

	result.Success = false
	result.Message = message
	result.Fee = decimal.Zero
	result.TotalCommission = decimal.Zero

	return result
}
