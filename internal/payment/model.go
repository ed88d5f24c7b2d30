package payment

import (
	"fmt"
	"time"
)

type Method string

const (
	MethodCash Method = "cash"
	MethodUPI  Method = "upi"
)

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodCash, MethodUPI:
		return Method(s), nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

type Payment struct {
	ID          int       `db:"id" json:"id"`
	ClientID    int       `db:"client_id" json:"client_id"`
	FacilityID  int       `db:"facility_id" json:"facility_id"`
	AmountCents int64     `db:"amount_cents" json:"amount_cents"`
	Method      Method    `db:"method" json:"method"`
	PaidAt      time.Time `db:"paid_at" json:"paid_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type RecordPaymentRequest struct {
	ClientID    int    `json:"client_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required"`
	// Date is optional RFC3339; payment date defaults to now.
	Date *time.Time `json:"date,omitempty"`
}

// RecordPaymentResponse bundles the payment with the client as updated by it,
// so the dashboard can refresh both in one round trip.
type RecordPaymentResponse struct {
	Payment       *Payment    `json:"payment"`
	UpdatedClient interface{} `json:"updated_client,omitempty"`
}
