package implementations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/jmoiron/sqlx"
)

const transactionColumns = `id, user_id, amount, payment_method, status, reference, description, created_at`

type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	logger.Info("transaction repository create", logger.Fields{
		"userId":        tx.UserID,
		"reference":     tx.Reference,
		"amount":        tx.Amount.StringFixed(2),
		"paymentMethod": tx.PaymentMethod,
		"status":        tx.Status,
	})

	const query = `
INSERT INTO transactions (
	user_id,
	amount,
	payment_method,
	status,
	reference,
	description
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + transactionColumns

	var created domain.Transaction
	if err := r.db.QueryRowxContext(
		ctx,
		query,
		tx.UserID,
		tx.Amount,
		tx.PaymentMethod,
		tx.Status,
		tx.Reference,
		tx.Description,
	).StructScan(&created); err != nil {
		logger.Error("transaction repository create failed", err, logger.Fields{
			"reference": tx.Reference,
		})
		if isUniqueViolation(err) {
			return domain.Transaction{}, fmt.Errorf("create transaction %q: %w", tx.Reference, commons.ErrDuplicate)
		}
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	logger.Info("transaction repository create success", logger.Fields{
		"transactionId": created.ID,
		"reference":     created.Reference,
	})

	return created, nil
}

func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (domain.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`

	var tx domain.Transaction
	if err := r.db.GetContext(ctx, &tx, query, reference); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("transaction repository record not found", logger.Fields{
				"reference": reference,
			})
			return domain.Transaction{}, commons.ErrRecordNotFound
		}
		logger.Error("transaction repository get by reference failed", err, logger.Fields{
			"reference": reference,
		})
		return domain.Transaction{}, fmt.Errorf("get transaction by reference: %w", err)
	}

	return tx, nil
}

func (r *TransactionRepository) UpdateStatusIfPending(ctx context.Context, reference string, status domain.TransactionStatus) (bool, error) {
	logger.Info("transaction repository update status", logger.Fields{
		"reference": reference,
		"status":    status,
	})

	const query = `
UPDATE transactions
SET status = $2
WHERE reference = $1
  AND status = 'pending'`

	result, err := r.db.ExecContext(ctx, query, reference, status)
	if err != nil {
		logger.Error("transaction repository update status failed", err, logger.Fields{
			"reference": reference,
			"status":    status,
		})
		return false, fmt.Errorf("update transaction status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update transaction status rows affected: %w", err)
	}

	logger.Info("transaction repository update status done", logger.Fields{
		"reference": reference,
		"status":    status,
		"applied":   rows == 1,
	})
	return rows == 1, nil
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	const query = `
SELECT ` + transactionColumns + `
FROM transactions
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

	txs := []domain.Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, userID); err != nil {
		logger.Error("transaction repository list failed", err, logger.Fields{
			"userId": userID,
		})
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return txs, nil
}
