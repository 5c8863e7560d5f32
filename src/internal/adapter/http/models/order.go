package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/domain"
)

type CreateOrderRequest struct {
	ServiceID int64 `json:"service_id"`
	// AppointmentTime is RFC3339.
	AppointmentTime string `json:"appointment_time"`
}

func (r CreateOrderRequest) Validate() error {
	var errs []string

	if r.ServiceID <= 0 {
		errs = append(errs, "service_id is required")
	}
	if raw := strings.TrimSpace(r.AppointmentTime); raw == "" {
		errs = append(errs, "appointment_time is required")
	} else if at, err := time.Parse(time.RFC3339, raw); err != nil {
		errs = append(errs, "appointment_time must be RFC3339")
	} else if !at.After(time.Now()) {
		errs = append(errs, "appointment_time must be in the future")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type OrderResponse struct {
	ID              int64  `json:"id"`
	ServiceID       int64  `json:"service_id"`
	ServiceName     string `json:"service_name"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateOrderStatusRequest) Validate() error {
	if !domain.OrderStatus(strings.TrimSpace(r.Status)).Valid() {
		return errors.New("status must be pending, confirmed, completed or cancelled")
	}
	return nil
}

type CreateFeedbackRequest struct {
	OrderID int64  `json:"order_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r CreateFeedbackRequest) Validate() error {
	var errs []string

	if r.OrderID <= 0 {
		errs = append(errs, "order_id is required")
	}
	if err := validateRating(r.Rating); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type FeedbackResponse struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"order_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}
