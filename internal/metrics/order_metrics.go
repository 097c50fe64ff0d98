// Package metrics exposes Prometheus collectors for the sales service.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation label values.
const (
	OperationApprove = "approve"
	OperationReject  = "reject"
	OperationShip    = "ship"
)

// Result label values.
const (
	ResultOK      = "ok"
	ResultRefused = "refused"
	ResultError   = "error"
	ResultSent    = "sent"
	ResultFailed  = "failed"
)

// OrderMetrics holds the counters and histograms of the order lifecycle.
type OrderMetrics struct {
	ordersCreated   prometheus.Counter
	transitions     *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewOrderMetrics registers the collectors on the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer registers the collectors on registerer. Collectors that
// are already registered are reused.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "sales_orders_created_total",
			Help: "Total number of orders created",
		}),
		transitions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "sales_order_transitions_total",
			Help: "Total number of order status transitions by operation and result",
		}, []string{"operation", "result"}),
		notifications: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "sales_shipment_notifications_total",
			Help: "Total number of shipment notifications handed to the broker by result",
		}, []string{"result"}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "sales_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// RecordOrderCreated counts one created order.
func (m *OrderMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordTransition counts one approve, reject or ship attempt.
func (m *OrderMetrics) RecordTransition(operation, result string) {
	m.transitions.WithLabelValues(operation, result).Inc()
}

// RecordNotifications counts a relay run.
func (m *OrderMetrics) RecordNotifications(sent int, failed bool) {
	if sent > 0 {
		m.notifications.WithLabelValues(ResultSent).Add(float64(sent))
	}
	if failed {
		m.notifications.WithLabelValues(ResultFailed).Inc()
	}
}

// ObserveRequest records the latency of one HTTP request.
func (m *OrderMetrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, route, fmt.Sprint(status)).Observe(elapsed.Seconds())
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

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
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

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
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
