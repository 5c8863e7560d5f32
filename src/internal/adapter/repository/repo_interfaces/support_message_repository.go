package repo_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/domain"
)

type SupportMessageRepository interface {
	Create(ctx context.Context, message domain.SupportMessage) (domain.SupportMessage, error)
	GetByID(ctx context.Context, id int64) (domain.SupportMessage, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.SupportMessage, error)
}
