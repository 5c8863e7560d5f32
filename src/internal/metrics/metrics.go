// Package metrics records payment and HTTP activity. Collectors are
// injected so services and handlers stay usable without a registry.
package metrics

import "time"

// Webhook outcomes recorded by the reconciler.
const (
	WebhookRejected         = "rejected"
	WebhookIgnored          = "ignored"
	WebhookUnknownReference = "unknown_reference"
	WebhookApplied          = "applied"
	WebhookDuplicate        = "duplicate"
	WebhookStoreError       = "store_error"
)

type Collector interface {
	RecordIntentCreated(success bool, duration time.Duration)
	RecordWebhook(outcome string)
	RecordCircuitState(name string, state CircuitState)
	RecordHTTPRequest(route, method string, status int, duration time.Duration)
}

type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitHalfOpen
	CircuitOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// NoOpCollector discards everything.
type NoOpCollector struct{}

func (NoOpCollector) RecordIntentCreated(bool, time.Duration) {}

func (NoOpCollector) RecordWebhook(string) {}

func (NoOpCollector) RecordCircuitState(string, CircuitState) {}

func (NoOpCollector) RecordHTTPRequest(string, string, int, time.Duration) {}
