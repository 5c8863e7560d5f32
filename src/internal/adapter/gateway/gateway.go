// Package gateway holds the payment gateway contracts consumed by the payment
// service and their Stripe implementation.
package gateway

import (
	"context"
	"errors"
)

var (
	// ErrGateway marks any failed outbound call: network, auth, validation, timeout or open circuit.
	ErrGateway = errors.New("payment gateway error")
	// ErrRejected marks a request the gateway understood and refused (4xx other than 429).
	ErrRejected = errors.New("payment gateway rejected request")
	// ErrVerification marks a webhook whose signature could not be verified.
	ErrVerification = errors.New("webhook verification failed")
	// ErrMalformedEvent marks a verified webhook whose payload lacks the fields we need.
	ErrMalformedEvent = errors.New("malformed webhook event")
)

type IntentRequest struct {
	AmountMinor int64
	Currency    string
	Description string
	Metadata    map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
}

type EventType string

const (
	EventIntentSucceeded EventType = "intent_succeeded"
	EventIntentFailed    EventType = "intent_failed"
	EventIgnored         EventType = "ignored"
)

type Event struct {
	ID       string
	Type     EventType
	RawType  string
	IntentID string
}

type IntentCreator interface {
	CreateIntent(ctx context.Context, req IntentRequest) (Intent, error)
	CancelIntent(ctx context.Context, intentID string) error
}

type EventVerifier interface {
	VerifyEvent(payload []byte, signatureHeader string) (Event, error)
}
