package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitadmin_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitadmin_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PlanAssignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitadmin_plan_assignments_total",
			Help: "Total number of SaaS plan assignments to facilities",
		},
		[]string{"plan"},
	)

	SubscriptionExpirationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitadmin_subscription_expirations_total",
			Help: "Total number of facility subscriptions auto-expired on read",
		},
	)

	QuotaRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitadmin_quota_rejections_total",
			Help: "Total number of creations rejected by subscription quotas",
		},
		[]string{"kind"},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitadmin_payments_recorded_total",
			Help: "Total number of member payments recorded",
		},
		[]string{"method"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitadmin_checkins_total",
			Help: "Total number of attendance records created",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitadmin_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPlanAssignment(planName string) {
	PlanAssignmentsTotal.WithLabelValues(planName).Inc()
}

func RecordSubscriptionExpiration() {
	SubscriptionExpirationsTotal.Inc()
}

func RecordQuotaRejection(kind string) {
	QuotaRejectionsTotal.WithLabelValues(kind).Inc()
}

func RecordPayment(method string) {
	PaymentsRecordedTotal.WithLabelValues(method).Inc()
}

func RecordCheckIn(status string) {
	CheckInsTotal.WithLabelValues(status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
