package service_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, req models.CreateOrderRequest) (commons.Response[models.OrderResponse], error)
	ListOrders(ctx context.Context, userID int64) (commons.Response[[]models.OrderResponse], error)
	UpdateOrderStatus(ctx context.Context, orderID int64, req models.UpdateOrderStatusRequest) (commons.Response[models.OrderResponse], error)
	CreateFeedback(ctx context.Context, userID int64, req models.CreateFeedbackRequest) (commons.Response[models.FeedbackResponse], error)
}
