package facility

import (
	"time"

	"fitadmin/internal/subscription"
)

// The subscription lifecycle is evaluated lazily: there is no scheduler, so an
// expired facility keeps its stale status until the next read path runs these
// functions. They are pure so the policy stays testable away from persistence.

// EvaluateExpiry flips an active facility to expired once its expiry passes.
// The bool reports whether anything changed, so callers know to persist.
func EvaluateExpiry(f Facility, now time.Time) (Facility, bool) {
	if f.SubscriptionStatus != StatusActive || f.SubscriptionExpiresAt == nil {
		return f, false
	}
	if f.SubscriptionExpiresAt.Before(now) {
		f.SubscriptionStatus = StatusExpired
		return f, true
	}
	return f, false
}

// AssignPlan puts the facility on the given SaaS plan starting now. The expiry
// is now plus the plan duration in calendar months; day overflow is left to
// AddDate normalization. Assigning never stacks remaining time and works from
// any prior status.
func AssignPlan(f Facility, p subscription.Plan, now time.Time) Facility {
	expiresAt := now.AddDate(0, p.DurationMonths, 0)
	planID := p.ID

	f.SubscriptionPlanID = &planID
	f.SubscriptionStatus = StatusActive
	f.SubscriptionExpiresAt = &expiresAt
	return f
}

// ApplyOverride is the superadmin escape hatch: either field may be rewritten
// directly, with no transition validation. Nil fields are left untouched.
func ApplyOverride(f Facility, status *Status, expiresAt *time.Time) Facility {
	if status != nil {
		f.SubscriptionStatus = *status
	}
	if expiresAt != nil {
		f.SubscriptionExpiresAt = expiresAt
	}
	return f
}

// QuotaAllows reports whether one more entity fits under the limit.
// A nil limit means unlimited.
func QuotaAllows(limit *int, current int) bool {
	return limit == nil || current < *limit
}
