package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusCollector struct {
	intentsCreated *prometheus.CounterVec
	intentLatency  *prometheus.HistogramVec
	webhookEvents  *prometheus.CounterVec
	circuitState   *prometheus.GaugeVec
	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
}

func NewPrometheusCollector(namespace string) *PrometheusCollector {
	return &PrometheusCollector{
		intentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_intents_total",
				Help:      "Payment intent creation attempts by result",
			},
			[]string{"result"},
		),
		intentLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "payment_intent_duration_seconds",
				Help:      "Latency of payment intent creation including the ledger insert",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
			},
			[]string{"result"},
		),
		webhookEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_webhooks_total",
				Help:      "Gateway webhook deliveries by reconciliation outcome",
			},
			[]string{"outcome"},
		),
		circuitState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"breaker"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "code"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route and method",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
}

// Register adds every collector to registry.
func (pc *PrometheusCollector) Register(registry prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		pc.intentsCreated,
		pc.intentLatency,
		pc.webhookEvents,
		pc.circuitState,
		pc.httpRequests,
		pc.httpLatency,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

func (pc *PrometheusCollector) RecordIntentCreated(success bool, duration time.Duration) {
	result := "failure"
	if success {
		result = "success"
	}
	pc.intentsCreated.WithLabelValues(result).Inc()
	pc.intentLatency.WithLabelValues(result).Observe(duration.Seconds())
}

func (pc *PrometheusCollector) RecordWebhook(outcome string) {
	pc.webhookEvents.WithLabelValues(outcome).Inc()
}

func (pc *PrometheusCollector) RecordCircuitState(name string, state CircuitState) {
	pc.circuitState.WithLabelValues(name).Set(float64(state))
}

func (pc *PrometheusCollector) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	pc.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	pc.httpLatency.WithLabelValues(route, method).Observe(duration.Seconds())
}
