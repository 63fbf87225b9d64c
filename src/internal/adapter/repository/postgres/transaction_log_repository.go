package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
	"github.com/api-sage/multiop-transaction-engine/src/internal/logger"
)

// TransactionLogRepository persists the append-only transaction history.
// Spec and result are stored as JSONB so decimal amounts round-trip without
// precision loss.
type TransactionLogRepository struct {
	db *sql.DB
}

func NewTransactionLogRepository(db *sql.DB) *TransactionLogRepository {
	return &TransactionLogRepository{db: db}
}

// EnsureSchema creates the transaction_log table when it does not exist yet.
func (r *TransactionLogRepository) EnsureSchema(ctx context.Context) error {
	const query = `
CREATE TABLE IF NOT EXISTS transaction_log (
	id BIGSERIAL PRIMARY KEY,
	reference TEXT NOT NULL UNIQUE,
	operator TEXT NOT NULL,
	success BOOLEAN NOT NULL,
	spec JSONB NOT NULL,
	result JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure transaction_log schema: %w", err)
	}

	return nil
}

func (r *TransactionLogRepository) Append(ctx context.Context, record domain.TransactionRecord) error {
	logger.Info("transaction log repository append", logger.Fields{
		"reference": record.Reference,
		"operator":  record.Operator,
		"success":   record.Result.Success,
	})

	specJSON, err := json.Marshal(record.Spec)
	if err != nil {
		return fmt.Errorf("marshal transaction spec: %w", err)
	}

	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("marshal transaction result: %w", err)
	}

	const query = `
INSERT INTO transaction_log (reference, operator, success, spec, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		record.Reference,
		string(record.Operator),
		record.Result.Success,
		specJSON,
		resultJSON,
		record.CreatedAt,
	); err != nil {
		logger.Error("transaction log repository append failed", err, logger.Fields{
			"reference": record.Reference,
		})
		return fmt.Errorf("append transaction record: %w", err)
	}

	return nil
}

func (r *TransactionLogRepository) List(ctx context.Context) ([]domain.TransactionRecord, error) {
	const query = `
SELECT reference, operator, spec, result, created_at
FROM transaction_log
ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transaction records: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction records: %w", err)
	}

	return records, nil
}

func (r *TransactionLogRepository) GetByReference(ctx context.Context, reference string) (domain.TransactionRecord, error) {
	const query = `
SELECT reference, operator, spec, result, created_at
FROM transaction_log
WHERE reference = $1`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, reference).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TransactionRecord{}, domain.ErrRecordNotFound
		}
		return domain.TransactionRecord{}, err
	}

	return record, nil
}

func scanRecord(scan func(dest ...any) error) (domain.TransactionRecord, error) {
	var record domain.TransactionRecord
	var operator string
	var specJSON, resultJSON []byte

	if err := scan(&record.Reference, &operator, &specJSON, &resultJSON, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TransactionRecord{}, err
		}
		return domain.TransactionRecord{}, fmt.Errorf("scan transaction record: %w", err)
	}

	record.Operator = domain.OperatorType(operator)

	if err := json.Unmarshal(specJSON, &record.Spec); err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("unmarshal transaction spec: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("unmarshal transaction result: %w", err)
	}

	return record, nil
}
