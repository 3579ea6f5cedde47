package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Confirmation outcomes recorded by the checkout flow.
const (
	ResultCreated    = "created"
	ResultExisting   = "existing"
	ResultUnpaid     = "unpaid"
	ResultOutOfStock = "out_of_stock"
	ResultNotFound   = "not_found"
	ResultInProgress = "in_progress"
	ResultError      = "error"
)

type Metrics struct {
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	checkoutSessionsTotal *prometheus.CounterVec
	confirmationsTotal    *prometheus.CounterVec
	promotionsTotal       *prometheus.CounterVec
}

func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		checkoutSessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkout_sessions_total",
				Help:      "Checkout sessions requested from the payment processor",
			},
			[]string{"status"},
		),
		confirmationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_confirmations_total",
				Help:      "Payment confirmations by outcome",
			},
			[]string{"result"},
		),
		promotionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "seller_promotions_total",
				Help:      "Seller promotion workflow transitions",
			},
			[]string{"action"},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.checkoutSessionsTotal,
		m.confirmationsTotal,
		m.promotionsTotal,
	)
	return m
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) CheckoutSessionCreated(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	m.checkoutSessionsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) PaymentConfirmed(result string) {
	m.confirmationsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) PromotionTransition(action string) {
	m.promotionsTotal.WithLabelValues(action).Inc()
}
