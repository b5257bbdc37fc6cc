package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	WebhookOrders    *prometheus.CounterVec
	DispatchEnqueued *prometheus.CounterVec
	DispatchResults  *prometheus.CounterVec
	DispatchLatency  prometheus.Histogram
	ScanMatches      *prometheus.CounterVec
	Errors           *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			WebhookOrders: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_orders_total",
				Help:      "Order webhooks by outcome (inserted, updated, rejected, failed).",
			}, []string{"result"}),
			DispatchEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_enqueued_total",
				Help:      "Notifications handed to the dispatch queue by event code.",
			}, []string{"event"}),
			DispatchResults: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_results_total",
				Help:      "Notification deliveries by event code and status.",
			}, []string{"event", "status"}),
			DispatchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_request_duration_seconds",
				Help:      "Latency of calls to the notification dispatcher.",
				Buckets:   prometheus.DefBuckets,
			}),
			ScanMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scan_matches_total",
				Help:      "Entities matched by the threshold scanner by event code and outcome.",
			}, []string{"event", "outcome"}),
			Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total errors grouped by component.",
			}, []string{"component"}),
		}

		prometheus.MustRegister(
			metricsInstance.WebhookOrders,
			metricsInstance.DispatchEnqueued,
			metricsInstance.DispatchResults,
			metricsInstance.DispatchLatency,
			metricsInstance.ScanMatches,
			metricsInstance.Errors,
		)
	})
	return metricsInstance
}
