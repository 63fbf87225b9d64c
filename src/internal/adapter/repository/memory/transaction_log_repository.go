package memory

import (
	"context"
	"sync"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

// TransactionLogRepository is a mutex-guarded in-memory append-only log,
// suitable for tests and single-process deployments.
type TransactionLogRepository struct {
	mu      sync.RWMutex
	records []domain.TransactionRecord
	byRef   map[string]int
}

func NewTransactionLogRepository() *TransactionLogRepository {
	return &TransactionLogRepository{byRef: make(map[string]int)}
}

func (r *TransactionLogRepository) Append(_ context.Context, record domain.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byRef[record.Reference] = len(r.records)
	r.records = append(r.records, record)

	return nil
}

func (r *TransactionLogRepository) List(_ context.Context) ([]domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TransactionRecord, len(r.records))
	copy(out, r.records)

	return out, nil
}

func (r *TransactionLogRepository) GetByReference(_ context.Context, reference string) (domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, ok := r.byRef[reference]
	if !ok {
		return domain.TransactionRecord{}, domain.ErrRecordNotFound
	}

	return r.records[index], nil
}
