package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	appointmentCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clinic",
			Name:      "appointment_created_total",
			Help:      "Count of appointments created by booking source.",
		},
		[]string{"source"},
	)

	statusTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clinic",
			Name:      "appointment_status_transition_total",
			Help:      "Count of appointment status transitions.",
		},
		[]string{"from", "to"},
	)

	transitionRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "clinic",
			Name:      "appointment_transition_rejected_total",
			Help:      "Count of transitions rejected by the transition table.",
		},
	)

	bookingConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "clinic",
			Name:      "booking_conflict_total",
			Help:      "Count of bookings rejected because the interval overlaps another appointment.",
		},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "clinic",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template and status code.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(appointmentCreated, statusTransition, transitionRejected, bookingConflict, httpDuration)
	})
}

func IncAppointmentCreated(source string) {
	appointmentCreated.WithLabelValues(source).Inc()
}

func IncStatusTransition(from, to string) {
	statusTransition.WithLabelValues(from, to).Inc()
}

func IncTransitionRejected() {
	transitionRejected.Inc()
}

func IncBookingConflict() {
	bookingConflict.Inc()
}

func ObserveHTTPRequest(method, route, code string, seconds float64) {
	httpDuration.WithLabelValues(method, route, code).Observe(seconds)
}
