package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restaurant",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	bookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "restaurant",
			Name:      "bookings_created_total",
			Help:      "Total number of bookings persisted",
		},
	)

	bookingsCapacityRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "restaurant",
			Name:      "bookings_capacity_rejected_total",
			Help:      "Total number of bookings rejected by the per-slot guest cap",
		},
	)

	bookingsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "restaurant",
			Name:      "bookings_deleted_total",
			Help:      "Total number of bookings deleted",
		},
	)
)

func IncHTTP(method, route, status string) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
}

func IncBookingCreated() {
	bookingsCreatedTotal.Inc()
}

func IncCapacityRejected() {
	bookingsCapacityRejectedTotal.Inc()
}

func IncBookingDeleted() {
	bookingsDeletedTotal.Inc()
}
