package domain_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

func TestTransactionResultJSONRoundTrip(t *testing.T) {
	rate := decimal.NewFromFloat(0.0015)
	original := domain.TransactionRecord{
		Reference: "TXN-42",
		Operator:  domain.OperatorBank,
		Spec: domain.TransactionSpec{
			Type:           domain.TransactionTransferInternational,
			SourceAccount:  "AB1234567890",
			Amount:         decimal.NewFromInt(1000000),
			Currency:       "XAF",
			TargetCurrency: "EUR",
			ExchangeRate:   &rate,
			Commissions: []domain.Commission{
				{Label: "wire", Kind: domain.CommissionPercentage, Value: decimal.NewFromInt(1)},
			},
			Steps: []domain.Step{domain.StepVerification, domain.StepCurrencyConversion},
		},
		Result: domain.TransactionResult{
			Reference:       "TXN-42",
			Success:         true,
			FinalAmount:     decimal.NewFromInt(1500),
			Fee:             decimal.NewFromFloat(22.5),
			TotalCommission: decimal.NewFromInt(15),
			CommissionLines: []domain.CommissionLine{{Label: "wire", Amount: decimal.NewFromInt(15)}},
			StepOutcomes: []domain.StepOutcome{
				{Step: domain.StepVerification, Status: domain.StepStatusPassed, Message: "ok"},
			},
			Message:    "TRANSFER_INTERNATIONAL of 1500.00 completed successfully",
			ExecutedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var restored domain.TransactionRecord
	if err := json.Unmarshal(payload, &restored); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	if !restored.Spec.Amount.Equal(original.Spec.Amount) {
		t.Fatalf("amount lost in round trip: %s", restored.Spec.Amount.String())
	}
	if restored.Spec.ExchangeRate == nil || !restored.Spec.ExchangeRate.Equal(rate) {
		t.Fatal("exchange rate lost in round trip")
	}
	if !restored.Result.Fee.Equal(decimal.NewFromFloat(22.5)) {
		t.Fatalf("fractional fee lost in round trip: %s", restored.Result.Fee.String())
	}
	if restored.Result.StepOutcomes[0].Status != domain.StepStatusPassed {
		t.Fatalf("step status lost in round trip: %s", restored.Result.StepOutcomes[0].Status)
	}
}

func TestCommissionAmountOn(t *testing.T) {
	base := decimal.NewFromInt(100000)

	flat := domain.Commission{Label: "flat", Kind: domain.CommissionFlat, Value: decimal.NewFromInt(750)}
	if !flat.AmountOn(base).Equal(decimal.NewFromInt(750)) {
		t.Fatalf("flat commission must ignore the base, got %s", flat.AmountOn(base).String())
	}

	pct := domain.Commission{Label: "pct", Kind: domain.CommissionPercentage, Value: decimal.NewFromInt(5)}
	if !pct.AmountOn(base).Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected 5%% of 100000 to be 5000, got %s", pct.AmountOn(base).String())
	}

	min := decimal.NewFromInt(100)
	max := decimal.NewFromInt(2000)
	clamped := domain.Commission{Label: "clamped", Kind: domain.CommissionPercentage, Value: decimal.NewFromInt(5), Minimum: &min, Maximum: &max}
	if !clamped.AmountOn(base).Equal(max) {
		t.Fatalf("expected commission clamped to maximum, got %s", clamped.AmountOn(base).String())
	}
	if !clamped.AmountOn(decimal.NewFromInt(100)).Equal(min) {
		t.Fatalf("expected commission clamped to minimum, got %s", clamped.AmountOn(decimal.NewFromInt(100)).String())
	}
}

func TestStepAndTypeValidity(t *testing.T) {
	for _, operator := range []domain.OperatorType{domain.OperatorBank, domain.OperatorMobileMoney, domain.OperatorMicrofinance} {
		if !operator.IsValid() {
			t.Fatalf("expected %s to be valid", operator)
		}
	}
	if domain.OperatorType("CRYPTO_EXCHANGE").IsValid() {
		t.Fatal("expected unknown operator type to be invalid")
	}
	if domain.TransactionType(strings.ToLower(string(domain.TransactionDeposit))).IsValid() {
		t.Fatal("transaction types are case sensitive")
	}
}
