package engine_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
	"github.com/api-sage/multiop-transaction-engine/src/internal/engine"
)

func TestBuildRequiresTypeAndAmount(t *testing.T) {
	_, err := engine.NewTransactionBuilder().
		Amount(decimal.NewFromInt(1000)).
		Build()
	if !errors.Is(err, domain.ErrIncompleteSpec) {
		t.Fatalf("expected incomplete spec error without a type, got %v", err)
	}

	_, err = engine.NewTransactionBuilder().
		Type(domain.TransactionTransferInternal).
		Build()
	if !errors.Is(err, domain.ErrIncompleteSpec) {
		t.Fatalf("expected incomplete spec error without an amount, got %v", err)
	}

	_, err = engine.NewTransactionBuilder().
		Type(domain.TransactionTransferInternal).
		Amount(decimal.NewFromInt(-1)).
		Build()
	if !errors.Is(err, domain.ErrIncompleteSpec) {
		t.Fatalf("expected incomplete spec error for a negative amount, got %v", err)
	}

	_, err = engine.NewTransactionBuilder().
		Type(domain.TransactionType("PIZZA_ORDER")).
		Amount(decimal.NewFromInt(1000)).
		Build()
	if !errors.Is(err, domain.ErrIncompleteSpec) {
		t.Fatalf("expected incomplete spec error for an unknown type, got %v", err)
	}
}

func TestStepFlagsAreIdempotent(t *testing.T) {
	spec, err := engine.NewTransactionBuilder().
		Type(domain.TransactionTransferInternal).
		Amount(decimal.NewFromInt(1000)).
		WithLogging().
		WithLogging().
		WithLogging().
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if len(spec.Steps) != 1 || spec.Steps[0] != domain.StepLogging {
		t.Fatalf("expected logging enabled exactly once, got %v", spec.Steps)
	}
}

func TestStepsEmittedInCanonicalOrder(t *testing.T) {
	// Enabled in reverse of the execution order.
	spec, err := engine.NewTransactionBuilder().
		Type(domain.TransactionTransferInternational).
		Amount(decimal.NewFromInt(1000)).
		WithNotification().
		WithLogging().
		WithCurrencyConversion("EUR", decimal.NewFromFloat(0.0015)).
		WithFraudCheck().
		WithVerification().
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	want := []domain.Step{
		domain.StepVerification,
		domain.StepFraudCheck,
		domain.StepCurrencyConversion,
		domain.StepLogging,
		domain.StepNotification,
	}
	if !reflect.DeepEqual(spec.Steps, want) {
		t.Fatalf("expected canonical step order %v, got %v", want, spec.Steps)
	}
}

func TestCommissionOrderPreserved(t *testing.T) {
	first := domain.Commission{Label: "first", Kind: domain.CommissionFlat, Value: decimal.NewFromInt(100)}
	second := domain.Commission{Label: "second", Kind: domain.CommissionPercentage, Value: decimal.NewFromInt(1)}
	third := domain.Commission{Label: "third", Kind: domain.CommissionFlat, Value: decimal.NewFromInt(50)}

	spec, err := engine.NewTransactionBuilder().
		Type(domain.TransactionTransferInternal).
		Amount(decimal.NewFromInt(1000)).
		WithCommission(first).
		WithCommissions(second, third).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	if len(spec.Commissions) != 3 {
		t.Fatalf("expected 3 commissions, got %d", len(spec.Commissions))
	}
	for i, label := range []string{"first", "second", "third"} {
		if spec.Commissions[i].Label != label {
			t.Fatalf("commission %d: expected label %q, got %q", i, label, spec.Commissions[i].Label)
		}
	}
}

func TestBuildTwiceYieldsEqualSpecs(t *testing.T) {
	builder := engine.NewTransactionBuilder().
		Type(domain.TransactionWithdrawal).
		From("AB1234567890", domain.OperatorBank).
		Amount(decimal.NewFromInt(75000)).
		Currency("xaf").
		WithVerification().
		WithNotification()

	firstSpec, err := builder.Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	secondSpec, err := builder.Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	if !reflect.DeepEqual(firstSpec, secondSpec) {
		t.Fatalf("expected structurally equal specs, got %+v and %+v", firstSpec, secondSpec)
	}
	if firstSpec.Currency != "XAF" {
		t.Fatalf("expected currency normalized to XAF, got %q", firstSpec.Currency)
	}
}
