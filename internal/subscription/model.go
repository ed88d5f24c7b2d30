package subscription

import "time"

// Plan is a SaaS billing tier a facility subscribes to. Nil limits mean
// unlimited. Distinct from the membership plans a facility sells to its own
// members (internal/plan).
type Plan struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	PriceCents     int64     `db:"price_cents" json:"price_cents"`
	DurationMonths int       `db:"duration_months" json:"duration_months"`
	MaxMembers     *int      `db:"max_members" json:"max_members,omitempty"`
	MaxStaff       *int      `db:"max_staff" json:"max_staff,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreatePlanRequest struct {
	Name           string `json:"name" binding:"required"`
	PriceCents     int64  `json:"price_cents" binding:"required,gte=0"`
	DurationMonths int    `json:"duration_months" binding:"required,min=1"`
	MaxMembers     *int   `json:"max_members,omitempty"`
	MaxStaff       *int   `json:"max_staff,omitempty"`
}

type UpdatePlanRequest struct {
	Name           *string `json:"name,omitempty"`
	PriceCents     *int64  `json:"price_cents,omitempty"`
	DurationMonths *int    `json:"duration_months,omitempty"`
	MaxMembers     *int    `json:"max_members,omitempty"`
	MaxStaff       *int    `json:"max_staff,omitempty"`
}
