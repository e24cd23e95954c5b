// Package metrics exposes Prometheus instrumentation for the ordering service.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics holds counters and histograms for order operations.
type OrderMetrics struct {
	ordersCreated   prometheus.Counter
	ordersConfirmed prometheus.Counter
	ordersUpdated   prometheus.Counter
	ordersExpired   prometheus.Counter
	eventsPublished *prometheus.CounterVec

	requestDuration *prometheus.HistogramVec
}

// NewOrderMetrics registers order metrics on the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer registers order metrics on the given
// registerer. Re-registering returns the existing collectors, so multiple
// components may share one instance safely.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_created_total",
			Help: "Total number of orders created",
		}),
		ordersConfirmed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_confirmed_total",
			Help: "Total number of orders confirmed by delivery partners",
		}),
		ordersUpdated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_status_updated_total",
			Help: "Total number of order status updates applied",
		}),
		ordersExpired: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_expired_total",
			Help: "Total number of stale orders cancelled by the expiry job",
		}),
		eventsPublished: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "ordering_events_published_total",
			Help: "Total number of order events published to the real-time channel",
		}, []string{"event_type"}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "ordering_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// OrderCreated increments the created orders counter.
func (m *OrderMetrics) OrderCreated() {
	m.ordersCreated.Inc()
}

// OrderConfirmed increments the confirmed orders counter.
func (m *OrderMetrics) OrderConfirmed() {
	m.ordersConfirmed.Inc()
}

// OrderStatusUpdated increments the status update counter.
func (m *OrderMetrics) OrderStatusUpdated() {
	m.ordersUpdated.Inc()
}

// OrdersExpired adds the number of orders cancelled by one expiry sweep.
func (m *OrderMetrics) OrdersExpired(count int) {
	m.ordersExpired.Add(float64(count))
}

// EventPublished increments the published events counter for an event type.
func (m *OrderMetrics) EventPublished(eventType string) {
	m.eventsPublished.WithLabelValues(eventType).Inc()
}

// ObserveRequest records the duration of one HTTP request.
func (m *OrderMetrics) ObserveRequest(method, path, status string, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(
	registerer prometheus.Registerer,
	opts prometheus.CounterOpts,
	labels []string,
) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(
	registerer prometheus.Registerer,
	opts prometheus.HistogramOpts,
	labels []string,
) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
