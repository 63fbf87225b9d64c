package repo_interfaces

import (
	"context"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

// TransactionLogRepository is the append-only transaction history. Every
// executed transaction is appended, including failed ones, for audit.
type TransactionLogRepository interface {
	Append(ctx context.Context, record domain.TransactionRecord) error
	List(ctx context.Context) ([]domain.TransactionRecord, error)
	GetByReference(ctx context.Context, reference string) (domain.TransactionRecord, error)
}
