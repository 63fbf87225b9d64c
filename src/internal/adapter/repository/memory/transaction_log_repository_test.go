package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/repository/memory"
	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

func record(reference string, success bool) domain.TransactionRecord {
	return domain.TransactionRecord{
		Reference: reference,
		Operator:  domain.OperatorBank,
		Spec: domain.TransactionSpec{
			Type:          domain.TransactionTransferInternal,
			SourceAccount: "AB1234567890",
			Amount:        decimal.NewFromInt(60000),
			Currency:      "XAF",
		},
		Result: domain.TransactionResult{Reference: reference, Success: success},
	}
}

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionLogRepository()

	for i := 0; i < 3; i++ {
		if err := repo.Append(ctx, record(fmt.Sprintf("TXN-%d", i), true)); err != nil {
			t.Fatalf("unexpected append error: %v", err)
		}
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	// Insertion order is preserved.
	for i, r := range records {
		if r.Reference != fmt.Sprintf("TXN-%d", i) {
			t.Fatalf("record %d: expected TXN-%d, got %s", i, i, r.Reference)
		}
	}
}

func TestFailedTransactionsAreRecorded(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionLogRepository()

	if err := repo.Append(ctx, record("TXN-FAILED", false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}

	found, err := repo.GetByReference(ctx, "TXN-FAILED")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if found.Result.Success {
		t.Fatal("expected the stored result to keep its failed status")
	}
}

func TestGetByReferenceNotFound(t *testing.T) {
	repo := memory.NewTransactionLogRepository()

	_, err := repo.GetByReference(context.Background(), "TXN-MISSING")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestListReturnsACopy(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionLogRepository()

	if err := repo.Append(ctx, record("TXN-0", true)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	records[0].Reference = "TAMPERED"

	again, err := repo.GetByReference(ctx, "TXN-0")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if again.Reference != "TXN-0" {
		t.Fatal("expected the stored record to be unaffected by caller mutation")
	}
}
