package client

import "time"

// EvaluateExpiry flips an active member to payment_due once their membership
// plan runs out. Like the facility subscription check it is lazy: it runs on
// list/read, never from a scheduler, and the bool tells callers to persist.
func EvaluateExpiry(c Client, now time.Time) (Client, bool) {
	if c.Status != StatusActive || c.PlanExpiresAt == nil {
		return c, false
	}
	if c.PlanExpiresAt.Before(now) {
		c.Status = StatusPaymentDue
		return c, true
	}
	return c, false
}
