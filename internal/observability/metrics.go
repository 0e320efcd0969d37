package observability

import (
	"github.com/deepak-5656/wanderease/internal/domain/bookings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_operations_total",
		Help: "Total number of booking operations by outcome",
	}, []string{"operation", "outcome"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of handled HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Name:       "http_request_duration_seconds",
		Help:       "Duration of HTTP request handling in seconds",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"method", "route"})
)

// ObserveBookingOperation counts an operation result. Domain rejections are
// labelled with their kind, anything else as "error".
func ObserveBookingOperation(operation string, err error) {
	bookingOperationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func ObserveHTTPRequest(method, route string, status int, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, route, statusClass(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := bookings.KindOf(err); kind != 0 {
		return kind.String()
	}
	return "error"
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
