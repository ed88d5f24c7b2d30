package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/clients", "200", 0.05)
	RecordHTTPRequest("GET", "/api/clients", "200", 0.1)
	RecordHTTPRequest("POST", "/api/clients", "422", 0.02)

	okCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/clients", "200"))
	quotaCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/clients", "422"))

	assert.Equal(t, float64(2), okCount)
	assert.Equal(t, float64(1), quotaCount)
}

func TestRecordPlanAssignment(t *testing.T) {
	PlanAssignmentsTotal.Reset()

	RecordPlanAssignment("Standard")
	RecordPlanAssignment("Standard")
	RecordPlanAssignment("Enterprise")

	standard := testutil.ToFloat64(PlanAssignmentsTotal.WithLabelValues("Standard"))
	enterprise := testutil.ToFloat64(PlanAssignmentsTotal.WithLabelValues("Enterprise"))

	assert.Equal(t, float64(2), standard)
	assert.Equal(t, float64(1), enterprise)
}

func TestRecordSubscriptionExpiration(t *testing.T) {
	before := testutil.ToFloat64(SubscriptionExpirationsTotal)

	RecordSubscriptionExpiration()
	RecordSubscriptionExpiration()

	after := testutil.ToFloat64(SubscriptionExpirationsTotal)
	assert.Equal(t, float64(2), after-before)
}

func TestRecordQuotaRejection(t *testing.T) {
	QuotaRejectionsTotal.Reset()

	RecordQuotaRejection("member")
	RecordQuotaRejection("member")
	RecordQuotaRejection("staff")

	members := testutil.ToFloat64(QuotaRejectionsTotal.WithLabelValues("member"))
	staff := testutil.ToFloat64(QuotaRejectionsTotal.WithLabelValues("staff"))

	assert.Equal(t, float64(2), members)
	assert.Equal(t, float64(1), staff)
}

func TestRecordPayment(t *testing.T) {
	PaymentsRecordedTotal.Reset()

	RecordPayment("cash")
	RecordPayment("upi")
	RecordPayment("upi")

	cash := testutil.ToFloat64(PaymentsRecordedTotal.WithLabelValues("cash"))
	upi := testutil.ToFloat64(PaymentsRecordedTotal.WithLabelValues("upi"))

	assert.Equal(t, float64(1), cash)
	assert.Equal(t, float64(2), upi)
}

func TestRecordCheckIn(t *testing.T) {
	CheckInsTotal.Reset()

	RecordCheckIn("present")
	RecordCheckIn("absent")

	present := testutil.ToFloat64(CheckInsTotal.WithLabelValues("present"))
	absent := testutil.ToFloat64(CheckInsTotal.WithLabelValues("absent"))

	assert.Equal(t, float64(1), present)
	assert.Equal(t, float64(1), absent)
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("welcome", "sent")
	RecordEmail("welcome", "failed")

	sent := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("welcome", "sent"))
	failed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("welcome", "failed"))

	assert.Equal(t, float64(1), sent)
	assert.Equal(t, float64(1), failed)
}
