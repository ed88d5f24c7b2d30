package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(v time.Time) *time.Time { return &v }

func TestEvaluateExpiry(t *testing.T) {
	now := time.Date(2024, 2, 16, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		client      Client
		wantStatus  Status
		wantChanged bool
	}{
		{
			name: "Active member past plan expiry flips to payment_due",
			client: Client{
				ID:            1,
				Status:        StatusActive,
				PlanExpiresAt: timePtr(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)),
			},
			wantStatus:  StatusPaymentDue,
			wantChanged: true,
		},
		{
			name: "Active member before expiry is untouched",
			client: Client{
				ID:            2,
				Status:        StatusActive,
				PlanExpiresAt: timePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
			},
			wantStatus:  StatusActive,
			wantChanged: false,
		},
		{
			name:        "Inactive member never flips",
			client:      Client{ID: 3, Status: StatusInactive, PlanExpiresAt: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))},
			wantStatus:  StatusInactive,
			wantChanged: false,
		},
		{
			name:        "Active member without expiry is untouched",
			client:      Client{ID: 4, Status: StatusActive},
			wantStatus:  StatusActive,
			wantChanged: false,
		},
		{
			name:        "Already payment_due stays without change",
			client:      Client{ID: 5, Status: StatusPaymentDue, PlanExpiresAt: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))},
			wantStatus:  StatusPaymentDue,
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := EvaluateExpiry(tt.client, now)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"active", "inactive", "payment_due"} {
		got, err := ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, Status(valid), got)
	}

	_, err := ParseStatus("expired")
	assert.Error(t, err)
}
