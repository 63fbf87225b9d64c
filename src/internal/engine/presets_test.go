package engine_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/capability/bank"
	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
	"github.com/api-sage/multiop-transaction-engine/src/internal/engine"
)

func TestQuickTransferKeepsFrictionLow(t *testing.T) {
	spec, err := engine.QuickTransfer("AB1234567890", "CD0987654321", decimal.NewFromInt(60000), "XAF").Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	if spec.HasStep(domain.StepVerification) || spec.HasStep(domain.StepFraudCheck) {
		t.Fatal("quick transfer must not enable verification or fraud check")
	}
	if !spec.HasStep(domain.StepNotification) {
		t.Fatal("quick transfer must notify the customer")
	}
	if len(spec.Commissions) != 1 {
		t.Fatalf("expected a single flat commission, got %d", len(spec.Commissions))
	}
}

func TestFullTransferRunsCompleteChain(t *testing.T) {
	spec, err := engine.FullTransfer("AB1234567890", "CD0987654321", decimal.NewFromInt(60000), "XAF").Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	for _, step := range []domain.Step{domain.StepVerification, domain.StepFraudCheck, domain.StepLogging, domain.StepNotification} {
		if !spec.HasStep(step) {
			t.Fatalf("expected full transfer to enable %s", step)
		}
	}
	if spec.HasStep(domain.StepCurrencyConversion) {
		t.Fatal("domestic full transfer must not enable currency conversion")
	}
	if len(spec.Commissions) != 2 {
		t.Fatalf("expected transfer + processing commissions, got %d", len(spec.Commissions))
	}
}

func TestInternationalTransferConverts(t *testing.T) {
	executor := engine.NewExecutor(nil, nil)
	bundle := bank.NewProvider().Bundle()

	spec, err := engine.InternationalTransfer(
		"AB1234567890", "FR7612345678901234567890123",
		decimal.NewFromInt(1000000), "XAF", "EUR", decimal.NewFromFloat(0.0015),
	).Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	result, err := executor.Execute(context.Background(), spec, bundle)
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %s", result.Message)
	}
	if !result.FinalAmount.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected converted amount 1500, got %s", result.FinalAmount.String())
	}

	// Transfer commission: 1% of 1500 = 15, clamped up to the 100 minimum.
	// Correspondent commission: flat 5000.
	if !result.TotalCommission.Equal(decimal.NewFromInt(5100)) {
		t.Fatalf("expected total commission 5100, got %s", result.TotalCommission.String())
	}
}

func TestWithdrawalPresetExecutes(t *testing.T) {
	executor := engine.NewExecutor(nil, nil)
	bundle := bank.NewProvider().Bundle()

	spec, err := engine.Withdrawal("AB1234567890", decimal.NewFromInt(200000), "XAF").Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	result, err := executor.Execute(context.Background(), spec, bundle)
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %s", result.Message)
	}
	// 0.75% of 200000.
	if !result.Fee.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected withdrawal fee 1500, got %s", result.Fee.String())
	}
	if !result.TotalCommission.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected flat processing commission 250, got %s", result.TotalCommission.String())
	}
}

func TestPresetsProduceBuildableSpecs(t *testing.T) {
	builders := map[string]*engine.TransactionBuilder{
		"quick":         engine.QuickTransfer("AB1234567890", "CD0987654321", decimal.NewFromInt(60000), "XAF"),
		"full":          engine.FullTransfer("AB1234567890", "CD0987654321", decimal.NewFromInt(60000), "XAF"),
		"interOperator": engine.InterOperatorTransfer("AB1234567890", domain.OperatorBank, "237671234567", domain.OperatorMobileMoney, decimal.NewFromInt(60000), "XAF"),
		"international": engine.InternationalTransfer("AB1234567890", "FR761234", decimal.NewFromInt(60000), "XAF", "EUR", decimal.NewFromFloat(0.0015)),
		"deposit":       engine.Deposit("AB1234567890", decimal.NewFromInt(60000), "XAF"),
		"withdrawal":    engine.Withdrawal("AB1234567890", decimal.NewFromInt(60000), "XAF"),
		"billPayment":   engine.BillPayment("AB1234567890", "ENEO-4471", decimal.NewFromInt(60000), "XAF"),
	}

	for name, builder := range builders {
		if _, err := builder.Build(); err != nil {
			t.Fatalf("preset %s: unexpected build error: %v", name, err)
		}
	}
}
