package repo_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/domain"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	GetByReference(ctx context.Context, reference string) (domain.Transaction, error)
	// UpdateStatusIfPending moves a pending row to status and reports whether
	// a row was changed. Rows already in a terminal state are left untouched.
	UpdateStatusIfPending(ctx context.Context, reference string, status domain.TransactionStatus) (bool, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error)
}
