package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"github.com/stripe/stripe-go/v72/webhook"
)

const (
	stripeIntentSucceeded = "payment_intent.succeeded"
	stripeIntentFailed    = "payment_intent.payment_failed"
	stripeIntentCanceled  = "payment_intent.canceled"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Timeout       time.Duration
	// MaxNetworkRetries is passed to stripe-go; requests are retried with the same idempotency key.
	MaxNetworkRetries int64
}

type StripeGateway struct {
	api           *client.API
	webhookSecret string
	timeout       time.Duration
}

func NewStripeGateway(cfg StripeConfig) *StripeGateway {
	return NewStripeGatewayWithHTTPClient(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewStripeGatewayWithHTTPClient(cfg StripeConfig, httpClient *http.Client) *StripeGateway {
	backendConfig := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		LeveledLogger:     stripeLogger{},
		MaxNetworkRetries: stripe.Int64(cfg.MaxNetworkRetries),
	}

	api := client.New(cfg.SecretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig),
	})

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		timeout:       cfg.Timeout,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req IntentRequest) (Intent, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountMinor),
		Currency: stripe.String(req.Currency),
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		params.Description = stripe.String(description)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, wrapStripeError("create payment intent", err)
	}

	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *StripeGateway) CancelIntent(ctx context.Context, intentID string) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	if _, err := g.api.PaymentIntents.Cancel(intentID, params); err != nil {
		return wrapStripeError("cancel payment intent", err)
	}
	return nil
}

// VerifyEvent checks the Stripe-Signature header against the raw payload and
// normalises payment intent events. Other event types come back as EventIgnored.
func (g *StripeGateway) VerifyEvent(payload []byte, signatureHeader string) (Event, error) {
	if strings.TrimSpace(g.webhookSecret) == "" {
		return Event{}, fmt.Errorf("%w: webhook secret is not configured", ErrVerification)
	}

	evt, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrVerification, err)
	}

	event := Event{ID: evt.ID, RawType: evt.Type}
	switch evt.Type {
	case stripeIntentSucceeded:
		event.Type = EventIntentSucceeded
	case stripeIntentFailed, stripeIntentCanceled:
		event.Type = EventIntentFailed
	default:
		event.Type = EventIgnored
		return event, nil
	}

	if evt.Data == nil || len(evt.Data.Raw) == 0 {
		return Event{}, fmt.Errorf("%w: event %s has no data", ErrMalformedEvent, evt.ID)
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(evt.Data.Raw, &pi); err != nil {
		return Event{}, fmt.Errorf("%w: decode payment intent: %v", ErrMalformedEvent, err)
	}
	if strings.TrimSpace(pi.ID) == "" {
		return Event{}, fmt.Errorf("%w: event %s has no payment intent id", ErrMalformedEvent, evt.ID)
	}

	event.IntentID = pi.ID
	return event, nil
}

func (g *StripeGateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func wrapStripeError(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		msg := stripeErr.Msg
		if msg == "" {
			msg = string(stripeErr.Type)
		}
		if stripeErr.HTTPStatusCode >= 400 && stripeErr.HTTPStatusCode < 500 && stripeErr.HTTPStatusCode != http.StatusTooManyRequests {
			return fmt.Errorf("%w: %w: %s: %s", ErrGateway, ErrRejected, op, msg)
		}
		return fmt.Errorf("%w: %s: %s", ErrGateway, op, msg)
	}
	return fmt.Errorf("%w: %s: %w", ErrGateway, op, err)
}

type stripeLogger struct{}

func (stripeLogger) Debugf(string, ...interface{}) {}

func (stripeLogger) Infof(format string, v ...interface{}) {
	logger.Info("stripe client", logger.Fields{"detail": fmt.Sprintf(format, v...)})
}

func (stripeLogger) Warnf(format string, v ...interface{}) {
	logger.Warn("stripe client", logger.Fields{"detail": fmt.Sprintf(format, v...)})
}

func (stripeLogger) Errorf(format string, v ...interface{}) {
	logger.Error("stripe client", nil, logger.Fields{"detail": fmt.Sprintf(format, v...)})
}
