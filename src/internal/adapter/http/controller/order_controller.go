package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi"
)

type OrderController struct {
	service service_interfaces.OrderService
}

func NewOrderController(service service_interfaces.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (c *OrderController) RegisterRoutes(r chi.Router, userAuth, adminAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(passthrough(userAuth))
		r.Post("/book", c.createOrder)
		r.Get("/my-bookings", c.listOrders)
		r.Post("/feedback", c.createFeedback)
	})

	r.With(adminOnly(adminAuth)).Patch("/admin/orders/{id}/status", c.updateStatus)
}

func (c *OrderController) createOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[models.OrderResponse](w, r, start)
	if !ok {
		return
	}
	req, ok := decodeJSON[models.CreateOrderRequest, models.OrderResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.CreateOrder(r.Context(), userID, req)
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *OrderController) listOrders(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[[]models.OrderResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.ListOrders(r.Context(), userID)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *OrderController) createFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[models.FeedbackResponse](w, r, start)
	if !ok {
		return
	}
	req, ok := decodeJSON[models.CreateFeedbackRequest, models.FeedbackResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.CreateFeedback(r.Context(), userID, req)
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *OrderController) updateStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	orderID, ok := pathID[models.OrderResponse](w, r, start, "id")
	if !ok {
		return
	}
	req, ok := decodeJSON[models.UpdateOrderStatusRequest, models.OrderResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.UpdateOrderStatus(r.Context(), orderID, req)
	respond(w, r, start, http.StatusOK, response, err)
}
