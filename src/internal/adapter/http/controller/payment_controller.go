package controller

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi"
)

// MaxWebhookBodyBytes caps gateway event payloads.
const MaxWebhookBodyBytes = 64 << 10

const stripeSignatureHeader = "Stripe-Signature"

type PaymentController struct {
	service service_interfaces.PaymentService
}

func NewPaymentController(service service_interfaces.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

func (c *PaymentController) RegisterRoutes(r chi.Router, userAuth, _ func(http.Handler) http.Handler) {
	r.Route("/payments", func(r chi.Router) {
		r.With(passthrough(userAuth)).Post("/intents", c.createIntent)
		r.With(passthrough(userAuth)).Get("/transactions", c.listTransactions)
		r.Post("/webhook", c.webhook)
	})
}

func (c *PaymentController) createIntent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[models.CreatePaymentIntentResponse](w, r, start)
	if !ok {
		return
	}
	req, ok := decodeJSON[models.CreatePaymentIntentRequest, models.CreatePaymentIntentResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.CreatePaymentIntent(r.Context(), userID, req)
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *PaymentController) listTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[[]models.TransactionResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.ListTransactions(r.Context(), userID)
	respond(w, r, start, http.StatusOK, response, err)
}

// webhook hands the raw body to the reconciler; the signature covers the
// exact bytes so the payload must not be decoded first.
func (c *PaymentController) webhook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxWebhookBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		detail := "unable to read request body"
		if errors.As(err, &maxErr) {
			detail = "request body too large"
		}
		logError(r, err, logger.Fields{"limitBytes": MaxWebhookBodyBytes})
		response := commons.ErrorResponse[models.WebhookResponse](commons.MessageInvalidWebhook, detail)
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.ReconcileWebhook(r.Context(), payload, r.Header.Get(stripeSignatureHeader))
	respond(w, r, start, http.StatusOK, response, err)
}
