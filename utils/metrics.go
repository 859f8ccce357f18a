package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	admissionDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_admission_decisions_total",
		Help: "Admission decisions per entity type and outcome.",
	}, []string{"entity", "outcome"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_http_requests_total",
		Help: "HTTP requests per method, route and status.",
	}, []string{"method", "path", "status"})
)

// RecordAdmission counts one accept/reject decision for the given entity
// type (product, bid, rating, condition, category).
func RecordAdmission(entity string, accepted bool) {
	outcome := "accepted"
	if !accepted {
		outcome = "rejected"
	}
	admissionDecisions.WithLabelValues(entity, outcome).Inc()
}

// RecordRequest counts one handled HTTP request.
func RecordRequest(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}
