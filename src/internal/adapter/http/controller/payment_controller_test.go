package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/controller"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/middleware"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/go-chi/chi"
)

type paymentServiceStub struct {
	createFn    func(ctx context.Context, userID int64, req models.CreatePaymentIntentRequest) (commons.Response[models.CreatePaymentIntentResponse], error)
	reconcileFn func(ctx context.Context, payload []byte, signatureHeader string) (commons.Response[models.WebhookResponse], error)
	listFn      func(ctx context.Context, userID int64) (commons.Response[[]models.TransactionResponse], error)
	createCalls int
}

func (s *paymentServiceStub) CreatePaymentIntent(ctx context.Context, userID int64, req models.CreatePaymentIntentRequest) (commons.Response[models.CreatePaymentIntentResponse], error) {
	s.createCalls++
	return s.createFn(ctx, userID, req)
}

func (s *paymentServiceStub) ReconcileWebhook(ctx context.Context, payload []byte, signatureHeader string) (commons.Response[models.WebhookResponse], error) {
	return s.reconcileFn(ctx, payload, signatureHeader)
}

func (s *paymentServiceStub) ListTransactions(ctx context.Context, userID int64) (commons.Response[[]models.TransactionResponse], error) {
	return s.listFn(ctx, userID)
}

// fakeUserAuth authenticates every request as user 7.
func fakeUserAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), 7)))
	})
}

// allowAdmin stands in for channel credentials that always match.
func allowAdmin(next http.Handler) http.Handler { return next }

func newPaymentRouter(svc *paymentServiceStub) http.Handler {
	r := chi.NewRouter()
	controller.NewPaymentController(svc).RegisterRoutes(r, fakeUserAuth, nil)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestPaymentControllerCreateIntent(t *testing.T) {
	svc := &paymentServiceStub{
		createFn: func(_ context.Context, userID int64, req models.CreatePaymentIntentRequest) (commons.Response[models.CreatePaymentIntentResponse], error) {
			if userID != 7 || req.Amount == nil || *req.Amount != 2000 {
				t.Fatalf("unexpected call user=%d req=%+v", userID, req)
			}
			return commons.SuccessResponse("payment intent created successfully", models.CreatePaymentIntentResponse{
				ClientSecret:    "pi_abc_secret",
				PaymentIntentID: "pi_abc",
			}), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/payments/intents", strings.NewReader(`{"amount":2000,"description":"Haircut"}`))
	rec := httptest.NewRecorder()
	newPaymentRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["client_secret"] != "pi_abc_secret" || data["payment_intent_id"] != "pi_abc" {
		t.Fatalf("unexpected data %v", data)
	}
}

func TestPaymentControllerCreateIntentMissingAmount(t *testing.T) {
	svc := &paymentServiceStub{}

	req := httptest.NewRequest(http.MethodPost, "/payments/intents", strings.NewReader(`{"description":"no amount"}`))
	rec := httptest.NewRecorder()
	newPaymentRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.createCalls != 0 {
		t.Fatal("service must not be called for invalid input")
	}
	if msg := decodeEnvelope(t, rec)["message"]; msg != "validation failed" {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestPaymentControllerCreateIntentGatewayError(t *testing.T) {
	svc := &paymentServiceStub{
		createFn: func(context.Context, int64, models.CreatePaymentIntentRequest) (commons.Response[models.CreatePaymentIntentResponse], error) {
			return commons.ErrorResponse[models.CreatePaymentIntentResponse]("payment gateway error", "timeout"), errors.New("timeout")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/payments/intents", strings.NewReader(`{"amount":2000}`))
	rec := httptest.NewRecorder()
	newPaymentRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestPaymentControllerWebhookStatuses(t *testing.T) {
	cases := []struct {
		name     string
		response commons.Response[models.WebhookResponse]
		err      error
		want     int
	}{
		{
			name:     "acknowledged",
			response: commons.SuccessResponse("webhook acknowledged", models.WebhookResponse{Outcome: "applied"}),
			want:     http.StatusOK,
		},
		{
			name:     "bad signature",
			response: commons.ErrorResponse[models.WebhookResponse]("invalid webhook", "signature mismatch"),
			err:      errors.New("signature mismatch"),
			want:     http.StatusBadRequest,
		},
		{
			name:     "retryable store error",
			response: commons.ErrorResponse[models.WebhookResponse]("webhook processing failed"),
			err:      errors.New("db down"),
			want:     http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotPayload, gotSignature string
			svc := &paymentServiceStub{
				reconcileFn: func(_ context.Context, payload []byte, signatureHeader string) (commons.Response[models.WebhookResponse], error) {
					gotPayload = string(payload)
					gotSignature = signatureHeader
					return tc.response, tc.err
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(`{"id":"evt_1"}`))
			req.Header.Set("Stripe-Signature", "t=1,v1=abc")
			rec := httptest.NewRecorder()
			newPaymentRouter(svc).ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
			if gotPayload != `{"id":"evt_1"}` || gotSignature != "t=1,v1=abc" {
				t.Fatalf("expected raw body and signature to reach the service, got %q %q", gotPayload, gotSignature)
			}
		})
	}
}

func TestPaymentControllerWebhookBodyTooLarge(t *testing.T) {
	called := false
	svc := &paymentServiceStub{
		reconcileFn: func(context.Context, []byte, string) (commons.Response[models.WebhookResponse], error) {
			called = true
			return commons.SuccessResponse("webhook acknowledged", models.WebhookResponse{}), nil
		},
	}

	body := bytes.Repeat([]byte("a"), controller.MaxWebhookBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newPaymentRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Fatal("oversized payloads must not reach the reconciler")
	}
}

func TestPaymentControllerListTransactions(t *testing.T) {
	svc := &paymentServiceStub{
		listFn: func(_ context.Context, userID int64) (commons.Response[[]models.TransactionResponse], error) {
			return commons.SuccessResponse("transactions fetched successfully", []models.TransactionResponse{
				{ID: 1, Amount: "20.00", Status: "success", Reference: "pi_abc"},
			}), nil
		},
	}

	rec := httptest.NewRecorder()
	newPaymentRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/transactions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeEnvelope(t, rec)["data"].([]any)
	if len(data) != 1 || data[0].(map[string]any)["amount"] != "20.00" {
		t.Fatalf("unexpected data %v", data)
	}
}
