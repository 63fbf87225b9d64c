package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/http/models"
	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/repository/memory"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability/bank"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability/microfinance"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability/mobilemoney"
	"github.com/api-sage/multiop-transaction-engine/src/internal/engine"
	"github.com/api-sage/multiop-transaction-engine/src/internal/usecase/services"
)

func newTransactionService(t *testing.T) (*services.TransactionService, *memory.TransactionLogRepository) {
	t.Helper()

	resolver, err := capability.NewResolver(bank.NewProvider(), mobilemoney.NewProvider(), microfinance.NewProvider())
	if err != nil {
		t.Fatalf("unexpected resolver error: %v", err)
	}
	repo := memory.NewTransactionLogRepository()

	return services.NewTransactionService(resolver, engine.NewExecutor(nil, nil), repo), repo
}

func TestTransactionServiceExecuteValidationError(t *testing.T) {
	svc, _ := newTransactionService(t)

	_, err := svc.ExecuteTransaction(context.Background(), models.ExecuteTransactionRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty execute request")
	}
}

func TestTransactionServiceExecuteUnsupportedOperator(t *testing.T) {
	svc, _ := newTransactionService(t)

	resp, err := svc.ExecuteTransaction(context.Background(), models.ExecuteTransactionRequest{
		Operator:      "HEDGE_FUND",
		Preset:        "QUICK_TRANSFER",
		SourceAccount: "AB1234567890",
		Amount:        decimal.NewFromInt(60000),
		Currency:      "XAF",
	})
	if err == nil {
		t.Fatal("expected error for unsupported operator")
	}
	if resp.Success {
		t.Fatal("expected error envelope for unsupported operator")
	}
}

func TestTransactionServiceExecutePresetSuccess(t *testing.T) {
	svc, repo := newTransactionService(t)

	resp, err := svc.ExecuteTransaction(context.Background(), models.ExecuteTransactionRequest{
		Operator:           "BANK",
		Preset:             "FULL_TRANSFER",
		SourceAccount:      "AB1234567890",
		DestinationAccount: "CD0987654321",
		Amount:             decimal.NewFromInt(100000),
		Currency:           "XAF",
	})
	if err != nil {
		t.Fatalf("unexpected execute error: %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
	if !resp.Data.Success {
		t.Fatalf("expected a successful transaction, got %s", resp.Data.Message)
	}
	// Transfer commission 1% of 100000 = 1000 plus flat 250.
	if !resp.Data.TotalCommission.Equal(decimal.NewFromInt(1250)) {
		t.Fatalf("expected total commission 1250, got %s", resp.Data.TotalCommission.String())
	}

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(records))
	}
}

func TestTransactionServiceFailedExecutionStillRecorded(t *testing.T) {
	svc, repo := newTransactionService(t)

	resp, err := svc.ExecuteTransaction(context.Background(), models.ExecuteTransactionRequest{
		Operator:           "BANK",
		Preset:             "FULL_TRANSFER",
		SourceAccount:      "invalid",
		DestinationAccount: "CD0987654321",
		Amount:             decimal.NewFromInt(100000),
		Currency:           "XAF",
	})
	if err != nil {
		t.Fatalf("policy failure must not surface as an error: %v", err)
	}
	if resp.Data == nil || resp.Data.Success {
		t.Fatal("expected a failed transaction result")
	}

	records, listErr := repo.List(context.Background())
	if listErr != nil {
		t.Fatalf("unexpected list error: %v", listErr)
	}
	if len(records) != 1 {
		t.Fatalf("expected the failed transaction in history, got %d records", len(records))
	}
	if records[0].Result.Success {
		t.Fatal("expected the stored result to keep its failed status")
	}
}

func TestTransactionServiceCustomSteps(t *testing.T) {
	svc, _ := newTransactionService(t)

	resp, err := svc.ExecuteTransaction(context.Background(), models.ExecuteTransactionRequest{
		Operator:      "MOBILE_MONEY",
		Type:          "PAYMENT",
		SourceAccount: "237671234567",
		Amount:        decimal.NewFromInt(20000),
		Currency:      "XAF",
		Steps:         []string{"VERIFICATION", "LOGGING"},
		Commissions: []models.CommissionModel{
			{Label: "merchant", Kind: "PERCENTAGE", Value: decimal.NewFromInt(2)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected execute error: %v", err)
	}
	if resp.Data == nil || !resp.Data.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	// 2% of 20000.
	if !resp.Data.TotalCommission.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected commission 400, got %s", resp.Data.TotalCommission.String())
	}
	if len(resp.Data.StepOutcomes) != 2 {
		t.Fatalf("expected 2 step outcomes, got %d", len(resp.Data.StepOutcomes))
	}
}

func TestTransactionServiceGetTransaction(t *testing.T) {
	svc, _ := newTransactionService(t)

	resp, err := svc.ExecuteTransaction(context.Background(), models.ExecuteTransactionRequest{
		Operator:      "MICROFINANCE",
		Preset:        "DEPOSIT",
		SourceAccount: "MF12345678",
		Amount:        decimal.NewFromInt(25000),
		Currency:      "XAF",
	})
	if err != nil {
		t.Fatalf("unexpected execute error: %v", err)
	}

	found, err := svc.GetTransaction(context.Background(), resp.Data.Reference)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if found.Data == nil || found.Data.Reference != resp.Data.Reference {
		t.Fatalf("expected to find the executed transaction, got %+v", found)
	}
}

func TestTransactionServiceGetTransactionNotFound(t *testing.T) {
	svc, _ := newTransactionService(t)

	resp, err := svc.GetTransaction(context.Background(), "TXN-MISSING")
	if err == nil {
		t.Fatal("expected error for missing reference")
	}
	if resp.Message != "Transaction not found" {
		t.Fatalf("expected not-found message, got %q", resp.Message)
	}
}
