package service_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, userID int64, req models.CreatePaymentIntentRequest) (commons.Response[models.CreatePaymentIntentResponse], error)
	ReconcileWebhook(ctx context.Context, payload []byte, signatureHeader string) (commons.Response[models.WebhookResponse], error)
	ListTransactions(ctx context.Context, userID int64) (commons.Response[[]models.TransactionResponse], error)
}
