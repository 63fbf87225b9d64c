package mobilemoney_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/capability/mobilemoney"
	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

func TestWalletNumberValidation(t *testing.T) {
	validator := mobilemoney.NewValidator()

	cases := []struct {
		wallet   string
		approved bool
	}{
		{"237671234567", true},
		{"237651234567", true},
		{"237691234567", true},
		{"237661234567", false}, // 66 is not an allocated mobile range
		{"671234567", false},    // missing country prefix
		{"2376712345678", false},
	}
	for _, tc := range cases {
		outcome := validator.ValidateTransaction(tc.wallet, decimal.NewFromInt(1000), domain.TransactionTransferInternal)
		if outcome.Approved != tc.approved {
			t.Fatalf("wallet %s: expected approved=%v, got %v (%s)", tc.wallet, tc.approved, outcome.Approved, outcome.Message)
		}
	}
}

func TestTransactionCeiling(t *testing.T) {
	validator := mobilemoney.NewValidator()

	outcome := validator.ValidateTransaction("237671234567", decimal.NewFromInt(500001), domain.TransactionWithdrawal)
	if outcome.Approved {
		t.Fatal("expected amount above wallet ceiling to fail")
	}
}

func TestSmallAmountFlatFee(t *testing.T) {
	rates := mobilemoney.NewRateCalculator()

	fee := rates.CalculateTransactionFee(decimal.NewFromInt(5000), domain.TransactionTransferInternal)
	if !fee.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected flat fee 50 inside the small-amount band, got %s", fee.String())
	}

	// 1% of 10000 = 100.
	fee = rates.CalculateTransactionFee(decimal.NewFromInt(10000), domain.TransactionTransferInternal)
	if !fee.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected percentage fee 100 above the band, got %s", fee.String())
	}
}

func TestWithdrawalCommission(t *testing.T) {
	rates := mobilemoney.NewRateCalculator()

	// 2% of 50000 = 1000.
	fee := rates.CalculateWithdrawalCommission(decimal.NewFromInt(50000))
	if !fee.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected withdrawal commission 1000, got %s", fee.String())
	}
}

func TestExternalTransferRejectsForeignFormats(t *testing.T) {
	adapter := mobilemoney.NewExternalAdapter()

	outcome := adapter.ExecuteExternalTransfer("AB1234567890", decimal.NewFromInt(1000), "TXN-1")
	if outcome.Succeeded {
		t.Fatal("expected bank-formatted destination to fail on the wallet gateway")
	}

	outcome = adapter.ExecuteExternalTransfer("237681234567", decimal.NewFromInt(1000), "TXN-2")
	if !outcome.Succeeded {
		t.Fatalf("expected wallet destination to succeed, got %s", outcome.Diagnostic)
	}
}
