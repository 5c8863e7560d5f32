package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/gateway"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/api-sage/booking-marketplace/src/internal/metrics"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

var _ service_interfaces.PaymentService = (*PaymentService)(nil)

type PaymentOptions struct {
	Currency string
	// RetryWebhookOnStoreError answers 500 on datastore failures so the
	// gateway redelivers. When false those deliveries are acknowledged.
	RetryWebhookOnStoreError bool
	Metrics                  metrics.Collector
}

type PaymentService struct {
	txRepo            repo_interfaces.TransactionRepository
	intents           gateway.IntentCreator
	verifier          gateway.EventVerifier
	metrics           metrics.Collector
	currency          string
	retryOnStoreError bool
}

func NewPaymentService(
	txRepo repo_interfaces.TransactionRepository,
	intents gateway.IntentCreator,
	verifier gateway.EventVerifier,
	opts PaymentOptions,
) *PaymentService {
	collector := opts.Metrics
	if collector == nil {
		collector = metrics.NoOpCollector{}
	}
	currency := strings.ToLower(strings.TrimSpace(opts.Currency))
	if currency == "" {
		currency = "usd"
	}

	return &PaymentService{
		txRepo:            txRepo,
		intents:           intents,
		verifier:          verifier,
		metrics:           collector,
		currency:          currency,
		retryOnStoreError: opts.RetryWebhookOnStoreError,
	}
}

// CreatePaymentIntent asks the gateway for an intent and records it as a
// pending ledger row. No row is written unless the gateway call succeeds.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, userID int64, req models.CreatePaymentIntentRequest) (commons.Response[models.CreatePaymentIntentResponse], error) {
	start := time.Now()
	logger.Info("payment service create intent request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("payment service create intent validation failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.CreatePaymentIntentResponse](commons.MessageValidationFailed, err.Error()), err
	}

	amountMinor := *req.Amount
	description := strings.TrimSpace(req.Description)

	intent, err := s.intents.CreateIntent(ctx, gateway.IntentRequest{
		AmountMinor: amountMinor,
		Currency:    s.currency,
		Description: description,
		Metadata: map[string]string{
			"user_id": strconv.FormatInt(userID, 10),
		},
	})
	if err != nil {
		s.metrics.RecordIntentCreated(false, time.Since(start))
		logger.Error("payment service create intent gateway failed", err, logger.Fields{
			"userId":      userID,
			"amountMinor": amountMinor,
		})
		return commons.ErrorResponse[models.CreatePaymentIntentResponse]("payment gateway error", err.Error()), err
	}

	created, err := s.txRepo.Create(ctx, domain.Transaction{
		UserID:        userID,
		Amount:        decimal.New(amountMinor, -2),
		PaymentMethod: domain.PaymentMethodStripe,
		Status:        domain.TransactionStatusPending,
		Reference:     intent.ID,
		Description:   description,
	})
	if err != nil {
		s.metrics.RecordIntentCreated(false, time.Since(start))
		logger.Error("payment service create intent ledger insert failed", err, logger.Fields{
			"userId":    userID,
			"reference": intent.ID,
		})
		s.cancelUnrecordedIntent(ctx, intent.ID)
		return commons.ErrorResponse[models.CreatePaymentIntentResponse]("failed to create payment intent", "Unable to record payment right now"), err
	}

	s.metrics.RecordIntentCreated(true, time.Since(start))
	logger.Info("payment service create intent success", logger.Fields{
		"userId":        userID,
		"transactionId": created.ID,
		"reference":     created.Reference,
		"amount":        created.Amount.StringFixed(2),
	})

	return commons.SuccessResponse("payment intent created successfully", models.CreatePaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}), nil
}

func (s *PaymentService) cancelUnrecordedIntent(ctx context.Context, intentID string) {
	if err := s.intents.CancelIntent(context.WithoutCancel(ctx), intentID); err != nil {
		logger.Error("payment service cancel unrecorded intent failed", err, logger.Fields{
			"reference": intentID,
		})
		return
	}
	logger.Warn("payment service cancelled unrecorded intent", logger.Fields{
		"reference": intentID,
	})
}

// ReconcileWebhook verifies a gateway event and applies the terminal status
// it carries to the matching pending ledger row. Redelivered events, unknown
// references and unrelated event types are acknowledged without changes.
func (s *PaymentService) ReconcileWebhook(ctx context.Context, payload []byte, signatureHeader string) (commons.Response[models.WebhookResponse], error) {
	event, err := s.verifier.VerifyEvent(payload, signatureHeader)
	if err != nil {
		s.metrics.RecordWebhook(metrics.WebhookRejected)
		logger.Error("payment service webhook verification failed", err, logger.Fields{
			"payloadBytes": len(payload),
		})
		return commons.ErrorResponse[models.WebhookResponse](commons.MessageInvalidWebhook, err.Error()), err
	}

	if event.Type == gateway.EventIgnored {
		s.metrics.RecordWebhook(metrics.WebhookIgnored)
		logger.Info("payment service webhook event ignored", logger.Fields{
			"eventId":   event.ID,
			"eventType": event.RawType,
		})
		return acknowledged(event, metrics.WebhookIgnored), nil
	}

	tx, err := s.txRepo.GetByReference(ctx, event.IntentID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			s.metrics.RecordWebhook(metrics.WebhookUnknownReference)
			logger.Warn("payment service webhook reference not found", logger.Fields{
				"eventId":   event.ID,
				"eventType": event.RawType,
				"reference": event.IntentID,
			})
			return acknowledged(event, metrics.WebhookUnknownReference), nil
		}
		return s.storeFailure(event, err)
	}

	target := domain.TransactionStatusFailed
	if event.Type == gateway.EventIntentSucceeded {
		target = domain.TransactionStatusSuccess
	}

	updated, err := s.txRepo.UpdateStatusIfPending(ctx, tx.Reference, target)
	if err != nil {
		return s.storeFailure(event, err)
	}

	if !updated {
		s.metrics.RecordWebhook(metrics.WebhookDuplicate)
		logger.Info("payment service webhook already reconciled", logger.Fields{
			"eventId":       event.ID,
			"reference":     tx.Reference,
			"currentStatus": tx.Status,
			"eventStatus":   target,
		})
		return acknowledged(event, metrics.WebhookDuplicate), nil
	}

	s.metrics.RecordWebhook(metrics.WebhookApplied)
	logger.Info("payment service webhook reconciled", logger.Fields{
		"eventId":       event.ID,
		"transactionId": tx.ID,
		"reference":     tx.Reference,
		"status":        target,
	})

	return acknowledged(event, metrics.WebhookApplied), nil
}

func (s *PaymentService) storeFailure(event gateway.Event, err error) (commons.Response[models.WebhookResponse], error) {
	s.metrics.RecordWebhook(metrics.WebhookStoreError)
	logger.Error("payment service webhook datastore failed", err, logger.Fields{
		"eventId":   event.ID,
		"reference": event.IntentID,
		"retry":     s.retryOnStoreError,
	})

	if s.retryOnStoreError {
		return commons.ErrorResponse[models.WebhookResponse](commons.MessageWebhookFailed, "Unable to record webhook right now"), err
	}
	return acknowledged(event, metrics.WebhookStoreError), nil
}

func acknowledged(event gateway.Event, outcome string) commons.Response[models.WebhookResponse] {
	return commons.SuccessResponse("webhook acknowledged", models.WebhookResponse{
		EventID: event.ID,
		Outcome: outcome,
	})
}

func (s *PaymentService) ListTransactions(ctx context.Context, userID int64) (commons.Response[[]models.TransactionResponse], error) {
	logger.Info("payment service list transactions request", logger.Fields{
		"userId": userID,
	})

	txs, err := s.txRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Error("payment service list transactions failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to list transactions", "Unable to fetch transactions right now"), err
	}

	response := make([]models.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		response = append(response, models.TransactionResponse{
			ID:            tx.ID,
			Amount:        tx.Amount.StringFixed(2),
			PaymentMethod: string(tx.PaymentMethod),
			Status:        string(tx.Status),
			Reference:     tx.Reference,
			Description:   tx.Description,
			CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
		})
	}

	logger.Info("payment service list transactions success", logger.Fields{
		"userId": userID,
		"count":  len(response),
	})

	return commons.SuccessResponse("transactions fetched successfully", response), nil
}
