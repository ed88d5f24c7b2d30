package plan

import "time"

// Plan is a membership tier a facility offers to its own members, priced and
// managed by the facility itself (not a SaaS billing tier).
type Plan struct {
	ID             int       `db:"id" json:"id"`
	FacilityID     int       `db:"facility_id" json:"facility_id"`
	Name           string    `db:"name" json:"name"`
	PriceCents     int64     `db:"price_cents" json:"price_cents"`
	DurationMonths int       `db:"duration_months" json:"duration_months"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreatePlanRequest struct {
	Name           string `json:"name" binding:"required"`
	PriceCents     int64  `json:"price_cents" binding:"required,gte=0"`
	DurationMonths int    `json:"duration_months" binding:"required,min=1"`
}

type UpdatePlanRequest struct {
	Name           *string `json:"name,omitempty"`
	PriceCents     *int64  `json:"price_cents,omitempty"`
	DurationMonths *int    `json:"duration_months,omitempty"`
}
