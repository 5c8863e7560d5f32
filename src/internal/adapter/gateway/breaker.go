package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/sony/gobreaker"
)

type BreakerConfig struct {
	Name string
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval is the closed-state window after which failure counts reset.
	Interval time.Duration
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout         time.Duration
	ConsecutiveFailures uint32
	// OnStateChange is optional and runs after the transition is logged.
	OnStateChange func(name string, to gobreaker.State)
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:                "payment-gateway",
		MaxRequests:         1,
		Interval:            time.Minute,
		OpenTimeout:         30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// BreakingIntentCreator stops calling the gateway after repeated outages.
// Requests the gateway rejects (ErrRejected) do not count as failures.
type BreakingIntentCreator struct {
	next IntentCreator
	cb   *gobreaker.CircuitBreaker
}

func NewBreakingIntentCreator(next IntentCreator, cfg BreakerConfig) *BreakingIntentCreator {
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrRejected)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("payment gateway circuit breaker state changed", logger.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(name, to)
			}
		},
	}

	return &BreakingIntentCreator{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakingIntentCreator) CreateIntent(ctx context.Context, req IntentRequest) (Intent, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.CreateIntent(ctx, req)
	})
	if err != nil {
		return Intent{}, breakerError(err)
	}
	return result.(Intent), nil
}

func (b *BreakingIntentCreator) CancelIntent(ctx context.Context, intentID string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.CancelIntent(ctx, intentID)
	})
	return breakerError(err)
}

func (b *BreakingIntentCreator) State() gobreaker.State {
	return b.cb.State()
}

func breakerError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrGateway, err)
	}
	return err
}
