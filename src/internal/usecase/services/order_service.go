package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.OrderService = (*OrderService)(nil)

type OrderService struct {
	orderRepo    repo_interfaces.OrderRepository
	feedbackRepo repo_interfaces.FeedbackRepository
	serviceRepo  repo_interfaces.ServiceRepository
}

func NewOrderService(
	orderRepo repo_interfaces.OrderRepository,
	feedbackRepo repo_interfaces.FeedbackRepository,
	serviceRepo repo_interfaces.ServiceRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		feedbackRepo: feedbackRepo,
		serviceRepo:  serviceRepo,
	}
}

// CreateOrder books a service for the caller. New orders always start pending.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, req models.CreateOrderRequest) (commons.Response[models.OrderResponse], error) {
	logger.Info("order service create order request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("order service create order validation failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.OrderResponse](commons.MessageValidationFailed, err.Error()), err
	}

	appointment, err := time.Parse(time.RFC3339, strings.TrimSpace(req.AppointmentTime))
	if err != nil {
		return commons.ErrorResponse[models.OrderResponse](commons.MessageValidationFailed, "appointment_time must be RFC3339"), err
	}

	if _, err := s.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		logger.Error("order service create order service lookup failed", err, logger.Fields{
			"serviceId": req.ServiceID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.OrderResponse]("Service"), err
		}
		return commons.ErrorResponse[models.OrderResponse]("failed to create order", "Unable to create order right now"), err
	}

	created, err := s.orderRepo.Create(ctx, domain.Order{
		UserID:          userID,
		ServiceID:       req.ServiceID,
		AppointmentTime: appointment.UTC(),
		Status:          domain.OrderStatusPending,
	})
	if err != nil {
		logger.Error("order service create order repository failed", err, logger.Fields{
			"userId":    userID,
			"serviceId": req.ServiceID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.OrderResponse]("Service"), err
		}
		return commons.ErrorResponse[models.OrderResponse]("failed to create order", "Unable to create order right now"), err
	}

	logger.Info("order service create order success", logger.Fields{
		"userId":  userID,
		"orderId": created.ID,
	})

	return commons.SuccessResponse("order created successfully", toOrderResponse(created)), nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64) (commons.Response[[]models.OrderResponse], error) {
	orders, err := s.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Error("order service list orders failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[[]models.OrderResponse]("failed to list orders", "Unable to fetch orders right now"), err
	}

	response := make([]models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}

	return commons.SuccessResponse("orders fetched successfully", response), nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, req models.UpdateOrderStatusRequest) (commons.Response[models.OrderResponse], error) {
	logger.Info("order service update status request", logger.Fields{
		"orderId": orderID,
		"status":  req.Status,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.OrderResponse](commons.MessageValidationFailed, err.Error()), err
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		logger.Error("order service update status failed", err, logger.Fields{
			"orderId": orderID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.OrderResponse]("Order"), err
		}
		return commons.ErrorResponse[models.OrderResponse]("failed to update order", "Unable to update order right now"), err
	}

	return commons.SuccessResponse("order updated successfully", toOrderResponse(updated)), nil
}

// CreateFeedback rates one of the caller's own orders. Orders owned by other
// users are reported as not found.
func (s *OrderService) CreateFeedback(ctx context.Context, userID int64, req models.CreateFeedbackRequest) (commons.Response[models.FeedbackResponse], error) {
	logger.Info("order service create feedback request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.FeedbackResponse](commons.MessageValidationFailed, err.Error()), err
	}

	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err == nil && order.UserID != userID {
		err = commons.ErrRecordNotFound
	}
	if err != nil {
		logger.Error("order service create feedback order lookup failed", err, logger.Fields{
			"userId":  userID,
			"orderId": req.OrderID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.FeedbackResponse]("Order"), err
		}
		return commons.ErrorResponse[models.FeedbackResponse]("failed to create feedback", "Unable to create feedback right now"), err
	}

	created, err := s.feedbackRepo.Create(ctx, domain.Feedback{
		OrderID: order.ID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	})
	if err != nil {
		logger.Error("order service create feedback repository failed", err, logger.Fields{
			"orderId": order.ID,
		})
		if errors.Is(err, commons.ErrDuplicate) {
			return commons.AlreadyExists[models.FeedbackResponse]("Feedback", "feedback was already submitted for this order"), err
		}
		return commons.ErrorResponse[models.FeedbackResponse]("failed to create feedback", "Unable to create feedback right now"), err
	}

	return commons.SuccessResponse("feedback created successfully", models.FeedbackResponse{
		ID:        created.ID,
		OrderID:   created.OrderID,
		Rating:    created.Rating,
		Comment:   created.Comment,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}), nil
}

func toOrderResponse(order domain.Order) models.OrderResponse {
	return models.OrderResponse{
		ID:              order.ID,
		ServiceID:       order.ServiceID,
		ServiceName:     order.ServiceName,
		AppointmentTime: order.AppointmentTime.Format(time.RFC3339),
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
	}
}
