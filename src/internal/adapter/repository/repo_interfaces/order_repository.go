package repo_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	GetByID(ctx context.Context, id int64) (domain.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.Order, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
}
